package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-llantas/internal/application/auth"
	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/domain"
)

// AuthHandler maneja registro, login y logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /auth/registro [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	user, err := h.uc.Register(c.UserContext(), in.Name, in.Email, in.Password)
	if err != nil {
		return writeErrorMsg(c, err, domain.BackendMessage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProfile(*user))
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Reenvía las credenciales al backend y retransmite su cookie de sesión.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	res, err := h.uc.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		return writeErrorMsg(c, err, domain.BackendMessage(err))
	}
	relayCookies(c, res.Cookies)
	return c.JSON(dto.LoginResponse{Usuario: dto.FromProfile(res.User)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	cookies, err := h.uc.Logout(c.UserContext(), credentialsFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	relayCookies(c, cookies)
	return c.JSON(dto.MessageResponse{Message: "Sesión cerrada"})
}

func relayCookies(c *fiber.Ctx, cookies []*http.Cookie) {
	for _, ck := range cookies {
		if v := ck.String(); v != "" {
			c.Append(fiber.HeaderSetCookie, v)
		}
	}
}
