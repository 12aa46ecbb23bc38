package backend

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// Nombres de campo de archivo que espera el backend (upload.single(...)).
const (
	productImageField = "imagen"
	avatarImageField  = "avatar"
)

// productForm arma el multipart de alta/edición de producto.
func productForm(in entity.ProductInput, image *ports.Upload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"nombre", in.Nombre},
		{"marca", in.Marca},
		{"modelo", in.Modelo},
		{"sku", in.SKU},
		{"ancho", strconv.Itoa(in.Ancho)},
		{"perfil", strconv.Itoa(in.Perfil)},
		{"aro", strconv.Itoa(in.Aro)},
		{"indiceCarga", in.IndiceCarga},
		{"indiceVelocidad", in.IndiceVelocidad},
		{"tipoVehiculo", in.TipoVehiculo},
		{"precio", in.Precio.String()},
		{"stock", strconv.Itoa(in.Stock)},
		{"descripcion", in.Descripcion},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("campo %s: %w", f[0], err)
		}
	}
	if image != nil {
		if err := writeFile(w, productImageField, *image); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// avatarForm arma el multipart con solo la imagen de perfil.
func avatarForm(image ports.Upload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeFile(w, avatarImageField, image); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, field string, up ports.Upload) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, up.Filename))
	ct := up.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("archivo %s: %w", field, err)
	}
	_, err = part.Write(up.Data)
	return err
}
