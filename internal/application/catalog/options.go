package catalog

import (
	"slices"

	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// Options valores disponibles para los selectores de filtro.
type Options struct {
	Anchos   []int
	Perfiles []int
	Aros     []int
	Tipos    []string
}

// BuildOptions extrae los valores distintos del catálogo completo. Las medidas se
// ordenan ascendente; los tipos conservan el orden de aparición. Los ceros
// (medida sin cargar) se omiten.
func BuildOptions(products []entity.Product) Options {
	var opts Options
	seenTipo := make(map[string]struct{})
	for _, p := range products {
		opts.Anchos = appendPositive(opts.Anchos, p.Ancho)
		opts.Perfiles = appendPositive(opts.Perfiles, p.Perfil)
		opts.Aros = appendPositive(opts.Aros, p.Aro)
		if p.TipoVehiculo == "" {
			continue
		}
		if _, ok := seenTipo[p.TipoVehiculo]; !ok {
			seenTipo[p.TipoVehiculo] = struct{}{}
			opts.Tipos = append(opts.Tipos, p.TipoVehiculo)
		}
	}
	opts.Anchos = sortedUnique(opts.Anchos)
	opts.Perfiles = sortedUnique(opts.Perfiles)
	opts.Aros = sortedUnique(opts.Aros)
	return opts
}

func appendPositive(list []int, v int) []int {
	if v > 0 {
		return append(list, v)
	}
	return list
}

func sortedUnique(list []int) []int {
	slices.Sort(list)
	return slices.Compact(list)
}
