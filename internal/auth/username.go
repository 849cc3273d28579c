package auth

import "strings"

// EmailToUsername - Kullanıcı adını email'den türetir: @ öncesi, küçük harf.
// Username kolonu 150 karakter, taşmasın diye kırpılır.
func EmailToUsername(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	username := email
	if i := strings.Index(email, "@"); i >= 0 {
		username = email[:i]
	}
	if len(username) > 150 {
		username = username[:150]
	}
	return username
}
