package controller

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"oasisevents_backend/internals/configs"
	"oasisevents_backend/internals/constants"
	"oasisevents_backend/internals/features/users/auth/dto"
	"oasisevents_backend/internals/features/users/auth/model"
	"oasisevents_backend/internals/features/users/auth/service"
	helper "oasisevents_backend/internals/helpers"
	authMW "oasisevents_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials. User not found.")
		}
		return helper.JsonServerError(c, "Login failed", err)
	}

	if !service.CheckPassword(user.UserPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials. Incorrect password.")
	}

	access, refresh, err := service.IssueTokenPair(ctrl.DB, c, &user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, user.UserRole+" login successful", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(&user),
	})
}

// 🟢 POST /api/createuser
func (ctrl *AuthController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	if !constants.IsValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role "+req.Role)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var cnt int64
	if err := ctrl.DB.Model(&model.UserModel{}).Where("user_email = ?", email).Count(&cnt).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check existing user", err)
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "User with this email already exists")
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonServerError(c, "Password hashing failed", err)
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.Name),
		UserEmail:    email,
		UserPassword: hash,
		UserRole:     req.Role,
	}
	if req.Role == constants.RoleSaleOfficer && strings.TrimSpace(req.AssignedRegion) != "" {
		region := strings.TrimSpace(req.AssignedRegion)
		user.UserAssignedRegion = &region
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonServerError(c, "Failed to create user", err)
	}

	return helper.JsonCreated(c, "User created successfully", dto.ToUserResponse(&user))
}

// 🟢 POST /api/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))

	var user model.UserModel
	err = ctrl.DB.Where("user_email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first Google sign-in: provision as EMPLOYEE with a random password
		hash, herr := service.HashPassword(uuid.NewString())
		if herr != nil {
			return helper.JsonServerError(c, "Password hashing failed", herr)
		}
		name := strings.TrimSpace(claimSet.Name)
		if name == "" {
			name = email
		}
		user = model.UserModel{
			UserName:     name,
			UserEmail:    email,
			UserPassword: hash,
			UserRole:     constants.RoleEmployee,
		}
		if cerr := ctrl.DB.Create(&user).Error; cerr != nil {
			return helper.JsonServerError(c, "Failed to create user", cerr)
		}
	} else if err != nil {
		return helper.JsonServerError(c, "Login failed", err)
	}

	access, refresh, err := service.IssueTokenPair(ctrl.DB, c, &user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Google login successful", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(&user),
	})
}

// 🟢 POST /api/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token required")
	}

	userID, err := service.VerifyAndRotateRefresh(ctrl.DB, req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid refresh token")
	}
	if !constants.IsValidRole(user.UserRole) {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid role")
	}

	access, refresh, err := service.IssueTokenPair(ctrl.DB, c, &user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// 🟢 GET /api/user
func (ctrl *AuthController) FetchUser(c *fiber.Ctx) error {
	userID := authMW.UserIDFromLocals(c)
	role := authMW.RoleFromLocals(c)
	if !constants.IsValidRole(role) {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid role")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonServerError(c, "Failed to fetch user", err)
	}
	return helper.JsonOK(c, "User fetched successfully", dto.ToUserResponse(&user))
}

// 🟢 GET /api/fetch-employee  (ADMIN only)
func (ctrl *AuthController) FetchEmployees(c *fiber.Ctx) error {
	if authMW.RoleFromLocals(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied. Admins only.")
	}

	q := ctrl.DB.Model(&model.UserModel{}).Where("user_role = ?", constants.RoleEmployee)
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("user_name ILIKE ?", "%"+name+"%")
	}

	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count employees", err)
	}

	var employees []model.UserModel
	if err := q.Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&employees).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch employees", err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Employees fetched successfully", dto.ToUserResponseList(employees), &pagination)
}

// 🟡 PUT /api/change-password  (ADMIN only)
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	if authMW.RoleFromLocals(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied. Admins only.")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var employee model.UserModel
	if err := ctrl.DB.Where("user_id = ? AND user_role = ?", req.EmployeeID, constants.RoleEmployee).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonServerError(c, "Failed to load employee", err)
	}

	hash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonServerError(c, "Password hashing failed", err)
	}
	if err := ctrl.DB.Model(&employee).Update("user_password", hash).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update password", err)
	}

	log.Printf("[INFO] password changed for employee %s by admin %s", employee.UserID, authMW.UserIDFromLocals(c))
	return helper.JsonUpdated(c, "Password updated successfully", nil)
}
