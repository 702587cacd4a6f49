// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"propertiku_backend/internals/configs"
	agencyModel "propertiku_backend/internals/features/agency/agencies/model"
	authModel "propertiku_backend/internals/features/users/auth/model"
	authRepo "propertiku_backend/internals/features/users/auth/repository"
	userModel "propertiku_backend/internals/features/users/user/model"
	helper "propertiku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET belum diset")
	}
	return configs.JWTRefreshSecret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// HMAC-SHA256 supaya refresh token tidak tersimpan plaintext.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

/* =========================================================
   Klaim keanggotaan agency
   ========================================================= */

// AgencyClaims: daftar agency per peran, dibawa di access token supaya
// middleware bisa resolve scope tanpa query tambahan.
type AgencyClaims struct {
	AdminIDs []string
	StaffIDs []string
}

func (ac AgencyClaims) AllIDs() []string {
	seen := make(map[string]struct{}, len(ac.AdminIDs)+len(ac.StaffIDs))
	out := make([]string, 0, len(ac.AdminIDs)+len(ac.StaffIDs))
	for _, id := range append(append([]string{}, ac.AdminIDs...), ac.StaffIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// getAgencyClaims: owner agency + staff role 'admin' → AdminIDs,
// staff role 'staff' → StaffIDs.
func getAgencyClaims(db *gorm.DB, userID uuid.UUID) (AgencyClaims, error) {
	var ac AgencyClaims

	var ownedIDs []string
	if err := db.Model(&agencyModel.AgencyModel{}).
		Where("agency_owner_user_id = ?", userID).
		Pluck("agency_id", &ownedIDs).Error; err != nil {
		return ac, err
	}
	ac.AdminIDs = append(ac.AdminIDs, ownedIDs...)

	var staffs []agencyModel.AgencyStaffModel
	if err := db.
		Where("agency_staff_user_id = ?", userID).
		Find(&staffs).Error; err != nil {
		return ac, err
	}
	for _, s := range staffs {
		switch s.AgencyStaffRole {
		case agencyModel.AgencyStaffRoleAdmin:
			ac.AdminIDs = append(ac.AdminIDs, s.AgencyStaffAgencyID.String())
		default:
			ac.StaffIDs = append(ac.StaffIDs, s.AgencyStaffAgencyID.String())
		}
	}
	return ac, nil
}

/* =========================================================
   REGISTER
   ========================================================= */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password,
		Phone:    strptr(strings.TrimSpace(input.Phone)),
	}
	if err := user.Validate(); err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if existing, _ := authRepo.FindUserByEmail(db, user.Email); existing != nil {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	user.Password = string(hashed)

	if err := authRepo.CreateUser(db, &user); err != nil {
		log.Printf("[ERROR] register: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* =========================================================
   LOGIN
   ========================================================= */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	user, err := authRepo.FindUserByEmail(db, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueTokens(c, db, *user)
}

/* =========================================================
   LOGIN GOOGLE
   ========================================================= */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google ID Token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// belum ada → buat akun baru dengan password acak
		newUser := userModel.UserModel{
			UserName: name,
			Email:    strings.ToLower(email),
			Password: generateDummyPassword(),
			GoogleID: &googleID,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			log.Printf("[ERROR] login google create user: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun Google")
		}
		user = &newUser
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	return issueTokens(c, db, *user)
}

func generateDummyPassword() string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

/* =========================================================
   ISSUE TOKENS
   ========================================================= */

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(user userModel.UserModel, ac AgencyClaims, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":              "access",
		"sub":              user.ID.String(),
		"id":               user.ID.String(),
		"user_name":        user.UserName,
		"role":             user.Role,
		"agency_admin_ids": ac.AdminIDs,
		"agency_staff_ids": ac.StaffIDs,
		"agency_ids":       ac.AllIDs(),
		"iat":              now.Unix(),
		"exp":              now.Add(accessTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	ac, err := getAgencyClaims(db, user.ID)
	if err != nil {
		log.Printf("[ERROR] agency claims: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil keanggotaan agency")
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, ac, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		log.Printf("[ERROR] save refresh token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helper.Success(c, "Login berhasil", fiber.Map{
		"user": fiber.Map{
			"id":               user.ID,
			"user_name":        user.UserName,
			"email":            user.Email,
			"role":             user.Role,
			"agency_admin_ids": ac.AdminIDs,
			"agency_staff_ids": ac.StaffIDs,
			"agency_ids":       ac.AllIDs(),
		},
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* =========================================================
   LOGOUT
   ========================================================= */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		entry := authModel.TokenBlacklist{
			Token:     raw,
			ExpiredAt: nowUTC().Add(resolveBlacklistTTL(raw)),
		}
		if err := authRepo.AddToBlacklist(db, &entry); err != nil {
			// token duplikat (logout dua kali) bukan error fatal
			log.Printf("[WARN] blacklist insert: %v", err)
		}
	}

	// Hapus refresh token dari DB bila ada
	if refreshCookie := helper.GetRefreshTokenFromCookie(c); refreshCookie != "" {
		if secret, err := getRefreshSecret(); err == nil {
			if err := authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(refreshCookie, secret)); err != nil {
				log.Printf("[WARN] delete refresh token: %v", err)
			}
		}
	}

	// Expire cookies
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Path: "/", HTTPOnly: true, Secure: true, SameSite: "None", Expires: expired})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Path: "/", HTTPOnly: true, Secure: true, SameSite: "None", Expires: expired})

	return helper.Success(c, "Logout berhasil", nil)
}

// resolveBlacklistTTL: simpan entri blacklist sampai exp token, fallback 24 jam.
func resolveBlacklistTTL(accessToken string) time.Duration {
	parser := jwt.Parser{SkipClaimsValidation: true}
	tok, _, err := parser.ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return 24 * time.Hour
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 24 * time.Hour
	}
	expVal, ok := claims["exp"].(float64)
	if !ok {
		return 24 * time.Hour
	}
	until := time.Until(time.Unix(int64(expVal), 0))
	if until <= 0 {
		return time.Minute
	}
	return until
}
