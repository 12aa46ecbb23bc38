package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-llantas/internal/application/catalog"
	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// ProductHandler catálogo de llantas (región protegida).
type ProductHandler struct{}

// NewProductHandler construye el handler.
func NewProductHandler() *ProductHandler { return &ProductHandler{} }

// List godoc
// @Summary      Vista del catálogo
// @Description  Búsqueda por nombre, marca o SKU; filtros por medida y tipo; orden estable.
// @Tags         productos
// @Produce      json
// @Param        q             query  string  false  "búsqueda"
// @Param        ancho         query  string  false  "ancho exacto"
// @Param        perfil        query  string  false  "perfil exacto"
// @Param        aro           query  string  false  "aro exacto"
// @Param        tipoVehiculo  query  string  false  "Auto, Camioneta o Camión"
// @Param        sort          query  string  false  "newest, price-asc, price-desc, stock-low"  default(newest)
// @Param        refresh       query  bool    false  "recargar desde el backend"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /panel/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	all := GetWorkspace(c).ProductRows().All()
	q := c.Query("q")
	filters := entity.FilterState{
		Ancho:        c.Query("ancho"),
		Perfil:       c.Query("perfil"),
		Aro:          c.Query("aro"),
		TipoVehiculo: c.Query("tipoVehiculo"),
		Sort:         catalog.ParseSort(c.Query("sort")),
	}

	view := catalog.View(all, q, filters)
	items := make([]dto.ProductResponse, 0, len(view))
	for _, p := range view {
		items = append(items, dto.FromProduct(p))
	}
	opts := catalog.BuildOptions(all)

	return c.JSON(dto.CatalogResponse{
		Items: items,
		Count: len(items),
		Total: len(all),
		Filters: dto.FilterStateResponse{
			Q:            q,
			Ancho:        filters.Ancho,
			Perfil:       filters.Perfil,
			Aro:          filters.Aro,
			TipoVehiculo: filters.TipoVehiculo,
			Sort:         string(filters.Sort),
			Active:       filters.Active(),
		},
		Options: dto.FilterOptionsResponse{
			Anchos:   opts.Anchos,
			Perfiles: opts.Perfiles,
			Aros:     opts.Aros,
			Tipos:    opts.Tipos,
		},
	})
}

// Create godoc
// @Summary      Crear producto
// @Description  No optimista: el producto aparece en el catálogo cuando el backend lo confirma.
// @Tags         productos
// @Accept       multipart/form-data
// @Produce      json
// @Param        nombre  formData  string  true   "nombre"
// @Param        sku     formData  string  true   "SKU"
// @Param        precio  formData  string  true   "precio"
// @Param        imagen  formData  file    false  "imagen"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /panel/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	in, err := form.ToInput()
	if err != nil {
		return writeError(c, err)
	}
	img, err := readUpload(c, "imagen")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_FILE", "no se pudo leer la imagen"))
	}
	p, err := GetWorkspace(c).Mutator().CreateProduct(c.UserContext(), GetCredentials(c), in, img)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(p))
}

// Update godoc
// @Summary      Editar producto
// @Description  Optimista: si el backend rechaza el cambio la fila vuelve a su estado anterior.
// @Tags         productos
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      int     true   "ID del producto"
// @Param        imagen  formData  file    false  "imagen nueva"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /panel/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	in, err := form.ToInput()
	if err != nil {
		return writeError(c, err)
	}
	img, err := readUpload(c, "imagen")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_FILE", "no se pudo leer la imagen"))
	}
	p, err := GetWorkspace(c).Mutator().UpdateProduct(c.UserContext(), GetCredentials(c), id, in, img)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromProduct(p))
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Optimista: si el backend rechaza el borrado la fila vuelve a su posición.
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /panel/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := GetWorkspace(c).Mutator().DeleteProduct(c.UserContext(), GetCredentials(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
