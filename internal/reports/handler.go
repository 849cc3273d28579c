package reports

import (
	"bufio"
	"errors"
	"log"
	"net/url"

	"timecard-backend/internal/database"
	"timecard-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// -------------------------------------------------
// GET /api/projects?page=1&page_size=100
// -------------------------------------------------
func ListProjectsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := ParsePageParams(c.Query("page"), c.Query("page_size"))

		var count int64
		if err := database.DB.Model(&models.Project{}).Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Projeler sayılamadı")
		}

		var projects []models.Project
		if err := database.DB.
			Preload("AccountingCode").
			Order("projects.id ASC").
			Offset(params.Offset()).
			Limit(params.PageSize).
			Find(&projects).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Projeler listelenemedi")
		}

		views := make([]ProjectView, 0, len(projects))
		for _, p := range projects {
			v, err := SerializeProject(p)
			if err != nil {
				// Eksik ilişkide satır atlanmaz, istek komple hata alır
				log.Println("Proje serileştirilemedi:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Proje serileştirilemedi: muhasebe kodu eksik")
			}
			views = append(views, v)
		}

		return c.JSON(PageEnvelope(c.Path(), queryValues(c), params, count, views))
	}
}

// -------------------------------------------------
// GET /api/users?page=1&page_size=100
// -------------------------------------------------
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := ParsePageParams(c.Query("page"), c.Query("page_size"))

		var count int64
		if err := database.DB.Model(&models.User{}).Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar sayılamadı")
		}

		var users []models.User
		if err := database.DB.
			Order("users.id ASC").
			Offset(params.Offset()).
			Limit(params.PageSize).
			Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar listelenemedi")
		}

		views := make([]UserView, 0, len(users))
		for _, u := range users {
			views = append(views, SerializeUser(u))
		}

		return c.JSON(PageEnvelope(c.Path(), queryValues(c), params, count, views))
	}
}

// -------------------------------------------------
// GET /api/timecards?date=2024-01-01&user=jdoe&project=42&page=1
// -------------------------------------------------
func ListTimecardsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := TimecardFilters{
			Date:    c.Query("date"),
			User:    c.Query("user"),
			Project: c.Query("project"),
		}
		params := ParsePageParams(c.Query("page"), c.Query("page_size"))

		q, err := ApplyFilters(TimecardQuery(database.DB), filters)
		if err != nil {
			if errors.Is(err, ErrInvalidDateFilter) {
				return fiber.NewError(fiber.StatusBadRequest, ErrInvalidDateFilter.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, "Filtre parametreleri geçersiz")
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Timecard satırları sayılamadı")
		}

		// Dönem başlangıcına göre sıralama bir kontrat: id tiebreaker'ı
		// sayfalar arası kararlılık için
		var items []models.TimecardObject
		if err := q.
			Select("timecard_objects.*").
			Preload("Timecard.User").
			Preload("Timecard.ReportingPeriod").
			Preload("Project.AccountingCode").
			Order("reporting_periods.start_date ASC, timecard_objects.id ASC").
			Offset(params.Offset()).
			Limit(params.PageSize).
			Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Timecard satırları listelenemedi")
		}

		views := make([]TimecardView, 0, len(items))
		for _, item := range items {
			v, err := SerializeTimecardObject(item)
			if err != nil {
				log.Println("Timecard satırı serileştirilemedi:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Timecard satırı serileştirilemedi: zorunlu ilişki eksik")
			}
			views = append(views, v)
		}

		return c.JSON(PageEnvelope(c.Path(), queryValues(c), params, count, views))
	}
}

// -------------------------------------------------
// GET /api/reports/project-timeline.csv?date=...&user=...&project=...
// Sayfalama yok, filtrelenmiş sonucun tamamı CSV olarak akar.
// -------------------------------------------------
func ProjectTimelineHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := TimecardFilters{
			Date:    c.Query("date"),
			User:    c.Query("user"),
			Project: c.Query("project"),
		}

		q, err := ApplyFilters(TimecardQuery(database.DB), filters)
		if err != nil {
			if errors.Is(err, ErrInvalidDateFilter) {
				return fiber.NewError(fiber.StatusBadRequest, ErrInvalidDateFilter.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, "Filtre parametreleri geçersiz")
		}

		var items []models.TimecardObject
		if err := q.
			Select("timecard_objects.*").
			Preload("Timecard.ReportingPeriod").
			Preload("Project.AccountingCode").
			Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor verisi okunamadı")
		}

		rows, err := AggregateTimeline(items)
		if err != nil {
			log.Println("Rapor oluşturulamadı:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı: zorunlu ilişki eksik")
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="project_timeline.csv"`)
		c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
			if err := WriteTimelineCSV(w, rows); err != nil {
				log.Println("CSV yazılamadı:", err)
			}
		})
		return nil
	}
}

func queryValues(c *fiber.Ctx) url.Values {
	vals := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		vals.Add(string(key), string(value))
	})
	return vals
}
