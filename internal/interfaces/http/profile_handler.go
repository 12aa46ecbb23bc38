package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/application/ports"
)

// ProfileHandler perfil del operador autenticado.
type ProfileHandler struct{}

// NewProfileHandler construye el handler.
func NewProfileHandler() *ProfileHandler { return &ProfileHandler{} }

// Get godoc
// @Summary      Perfil del operador
// @Tags         perfil
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      303  "sin sesión o sin rol admin"
// @Router       /panel/perfil [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.FromProfile(GetWorkspace(c).Profile()))
}

// UpdateAvatar godoc
// @Summary      Cambiar foto de perfil
// @Description  Bloqueante: el perfil cambia solo cuando el backend confirma la subida.
// @Tags         perfil
// @Accept       multipart/form-data
// @Produce      json
// @Param        avatar  formData  file  true  "imagen"
// @Success      200     {object}  dto.AvatarResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /panel/perfil/foto [post]
func (h *ProfileHandler) UpdateAvatar(c *fiber.Ctx) error {
	up, err := readUpload(c, "avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_FILE", "no se pudo leer el archivo"))
	}
	if up == nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("VALIDATION", "Selecciona una imagen"))
	}
	url, err := GetWorkspace(c).Mutator().UpdateAvatar(c.UserContext(), GetCredentials(c), *up)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AvatarResponse{AvatarURL: url})
}

// readUpload lee el archivo del campo indicado. Sin archivo, o sin cuerpo
// multipart, devuelve nil, nil; un multipart mal formado es error.
func readUpload(c *fiber.Ctx, field string) (*ports.Upload, error) {
	fh, err := c.FormFile(field)
	switch {
	case errors.Is(err, fasthttp.ErrMissingFile), errors.Is(err, fasthttp.ErrNoMultipartForm):
		return nil, nil
	case err != nil:
		return nil, err
	case fh == nil:
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("archivo vacío")
	}
	return &ports.Upload{
		Filename:    fh.Filename,
		ContentType: strings.TrimSpace(fh.Header.Get(fiber.HeaderContentType)),
		Data:        data,
	}, nil
}
