package employees

import (
	"fmt"
	"strings"

	"timecard-backend/internal/audit"
	"timecard-backend/internal/auth"
	"timecard-backend/internal/database"
	"timecard-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type EmployeeResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type UpdateEmployeeRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	// "YYYY-MM-DD" veya "NA" (tarihi temizler), boş bırakılabilir
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func toEmployeeResponse(u models.User) EmployeeResponse {
	res := EmployeeResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if u.UserData != nil {
		if u.UserData.StartDate != nil {
			s := u.UserData.StartDate.Format("2006-01-02")
			res.StartDate = &s
		}
		if u.UserData.EndDate != nil {
			s := u.UserData.EndDate.Format("2006-01-02")
			res.EndDate = &s
		}
	}
	return res
}

// Yardımcı: isteği yapan kullanıcıyı çek (audit log için)
func getActor(c *fiber.Ctx) (*models.User, error) {
	userIDVal := c.Locals(auth.CtxUserIDKey)
	userID, ok := userIDVal.(uint)
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı bulunamadı")
	}
	return &user, nil
}

// -------------------------------------------------
// GET /api/employees
// -------------------------------------------------
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Preload("UserData").Order("users.id ASC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışanlar listelenemedi")
		}

		res := make([]EmployeeResponse, 0, len(users))
		for _, u := range users {
			res = append(res, toEmployeeResponse(u))
		}

		return c.JSON(res)
	}
}

// -------------------------------------------------
// GET /api/employees/:username
// -------------------------------------------------
func GetEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")

		var user models.User
		if err := database.DB.Preload("UserData").Where("username = ?", username).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		return c.JSON(toEmployeeResponse(user))
	}
}

// -------------------------------------------------
// PUT /api/employees/:username
// Kayıt yoksa oluşturur (upsert). Sadece super admin veya kullanıcının
// kendisi düzenleyebilir. Username, email'den yeniden türetilir.
// -------------------------------------------------
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")

		actor, err := getActor(c)
		if err != nil {
			return err
		}

		if actor.Role != models.RoleSuperAdmin && actor.Username != username {
			return fiber.NewError(fiber.StatusForbidden, "Bu çalışanı düzenleme yetkiniz yok")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.FirstName = strings.TrimSpace(body.FirstName)
		body.LastName = strings.TrimSpace(body.LastName)

		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Form alanları geçersiz: email, first_name ve last_name zorunlu")
		}

		startDate, err := parseFormDate(body.StartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start_date geçersiz, 'YYYY-MM-DD' veya 'NA' olmalı")
		}
		endDate, err := parseFormDate(body.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end_date geçersiz, 'YYYY-MM-DD' veya 'NA' olmalı")
		}

		var user models.User
		created := false
		if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
			// upsert: kayıt yoksa employee olarak oluştur
			user = models.User{
				Username: username,
				Role:     models.RoleEmployee,
			}
			created = true
		}

		before := fiber.Map{
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		}

		user.Email = body.Email
		user.Username = auth.EmailToUsername(body.Email)
		user.FirstName = body.FirstName
		user.LastName = body.LastName

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan kaydedilemedi")
		}

		var userData models.UserData
		if err := database.DB.Where("user_id = ?", user.ID).First(&userData).Error; err != nil {
			userData = models.UserData{UserID: user.ID}
		}
		userData.StartDate = startDate
		userData.EndDate = endDate

		if err := database.DB.Save(&userData).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan tarihleri kaydedilemedi")
		}
		user.UserData = &userData

		// Audit log yaz
		action := models.AuditActionUpdate
		if created {
			action = models.AuditActionCreate
		}
		after := fiber.Map{
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"start_date": body.StartDate,
			"end_date":   body.EndDate,
		}
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      actor.ID,
			UserName:    actor.Username,
			EntityType:  "user",
			EntityID:    user.ID,
			Action:      action,
			Description: fmt.Sprintf("Çalışan kaydı güncellendi: %s", user.Username),
			Before:      before,
			After:       after,
		}); logErr != nil {
			// Log hatası kritik değil, sadece log'la
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		status := fiber.StatusOK
		if created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(toEmployeeResponse(user))
	}
}
