package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
	"github.com/jhoicas/panel-llantas/internal/infrastructure/backend"
)

var testCreds = ports.Credentials{Cookie: "token=abc123"}

func newClient(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.NewClient(backend.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, zerolog.Nop())
}

func TestProfile_ReenviaCookieYDecodifica(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usuarios/perfil", r.URL.Path)
		assert.Equal(t, "token=abc123", r.Header.Get("Cookie"))
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		_, _ = w.Write([]byte(`{"id":7,"name":"Ana","email":"ana@llantas.pe","rol":"admin","avatarUrl":null}`))
	})

	p, err := c.Profile(context.Background(), testCreds)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, entity.RoleAdmin, p.Rol)
	assert.Empty(t, p.AvatarURL)
}

func TestProfile_401EsAuthFailure(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Token no proporcionado"}`))
	})

	_, err := c.Profile(context.Background(), ports.Credentials{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindAuth))
	assert.Equal(t, "Token no proporcionado", domain.BackendMessage(err))
	assert.Equal(t, domain.MsgUnauthorized, domain.UserMessage(err))
}

func TestListProducts_PrecioComoStringONumero(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"nombre":"Pilot Sport 4","marca":"Michelin","sku":"MICH-1","ancho":205,"perfil":55,"aro":16,"tipoVehiculo":"Auto","precio":"450.90","stock":4},
			{"id":2,"nombre":"Turanza","marca":"Bridgestone","sku":"BRI-2","ancho":195,"perfil":65,"aro":15,"tipoVehiculo":"Auto","precio":320,"stock":0,"descripcion":null}
		]`))
	})

	list, err := c.ListProducts(context.Background(), testCreds)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Precio.Equal(decimal.RequireFromString("450.90")))
	assert.True(t, list[1].Precio.Equal(decimal.NewFromInt(320)))
	assert.Equal(t, 205, list[0].Ancho)
}

func TestCreateProduct_MultipartConImagen(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Pilot Sport 4", r.FormValue("nombre"))
		assert.Equal(t, "205", r.FormValue("ancho"))
		assert.Equal(t, "450.9", r.FormValue("precio"))
		f, hdr, err := r.FormFile("imagen")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "llanta.png", hdr.Filename)
		assert.Equal(t, []byte{0x89, 0x50}, data)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"producto":{"id":31,"nombre":"Pilot Sport 4","sku":"MICH-1","precio":"450.90","imagenUrl":"https://cdn/img/31.png"}}`))
	})

	in := entity.ProductInput{Nombre: "Pilot Sport 4", SKU: "MICH-1", Ancho: 205, Precio: decimal.RequireFromString("450.90")}
	p, err := c.CreateProduct(context.Background(), testCreds, in, &ports.Upload{Filename: "llanta.png", ContentType: "image/png", Data: []byte{0x89, 0x50}})
	require.NoError(t, err)
	assert.Equal(t, int64(31), p.ID)
	assert.Equal(t, "https://cdn/img/31.png", p.ImagenURL)
}

func TestCreateProduct_ErroresDeValidacion(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"msg":"El SKU es obligatorio"},{"msg":"El precio es obligatorio"}]}`))
	})

	_, err := c.CreateProduct(context.Background(), testCreds, entity.ProductInput{}, nil)
	require.Error(t, err)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.KindValidation, apiErr.Kind)
	assert.Equal(t, []string{"El SKU es obligatorio", "El precio es obligatorio"}, apiErr.Details)
}

func TestUpdateOrderStatus_EnviaEstado(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/pedidos/12/estado", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "enviado", body["estado"])
		_, _ = w.Write([]byte(`{"pedido":{"id":12,"estado":"enviado","total":"99.50"}}`))
	})

	o, err := c.UpdateOrderStatus(context.Background(), testCreds, 12, entity.OrderEnviado)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderEnviado, o.Estado)
}

func TestListOrders_ClienteDesdeUsuario(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"total":"10.00","estado":"pendiente","createdAt":"2025-03-01T10:00:00Z","Usuario":{"name":"Luis","email":"luis@x.pe"}},
			{"id":2,"total":5,"estado":"pagado","createdAt":"2025-03-02T10:00:00Z"}
		]`))
	})

	list, err := c.ListOrders(context.Background(), testCreds)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Luis", list[0].Cliente.DisplayName())
	assert.Equal(t, "Anónimo", list[1].Cliente.DisplayName())
}

func TestStatusClasificados(t *testing.T) {
	cases := []struct {
		status int
		kind   domain.ErrorKind
	}{
		{http.StatusForbidden, domain.KindAuthorization},
		{http.StatusTooManyRequests, domain.KindRateLimited},
		{http.StatusInternalServerError, domain.KindServer},
	}
	for _, tc := range cases {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		err := c.DeleteProduct(context.Background(), testCreds, 3)
		assert.True(t, domain.IsKind(err, tc.kind), "status %d", tc.status)
	}
}

func TestCuerpoInesperadoEsServerFailure(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>proxy</html>`))
	})
	_, err := c.ListOrders(context.Background(), testCreds)
	assert.True(t, domain.IsKind(err, domain.KindServer))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := backend.NewClient(backend.Config{BaseURL: url, Timeout: time.Second}, zerolog.Nop())
	_, err := c.Profile(context.Background(), testCreds)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransport))
	assert.Equal(t, domain.MsgConnection, domain.UserMessage(err))
}

func TestLogin_DevuelveCookies(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "jwt-value", HttpOnly: true})
		_, _ = w.Write([]byte(`{"usuario":{"id":1,"name":"Ana","email":"ana@llantas.pe","rol":"admin"}}`))
	})

	res, err := c.Login(context.Background(), "ana@llantas.pe", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "Ana", res.User.Name)
	require.Len(t, res.Cookies, 1)
	assert.Equal(t, "token", res.Cookies[0].Name)
}

func TestUpdateAvatar(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("avatar")
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"avatarUrl":"https://cdn/avatars/7.jpg"}`))
	})

	url, err := c.UpdateAvatar(context.Background(), testCreds, ports.Upload{Filename: "yo.jpg", Data: []byte("jpg")})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/avatars/7.jpg", url)
}
