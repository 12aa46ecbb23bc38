package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/panel-llantas/internal/application/catalog"
	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/application/session"
	"github.com/jhoicas/panel-llantas/internal/application/workspace"
	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// cli estado compartido por los comandos. ws y creds se resuelven en
// PersistentPreRunE, después de que el guard autoriza la sesión.
type cli struct {
	guard      *session.Guard
	workspaces *workspace.Registry
	exporter   ports.OrdersExporter
	storeName  string
	out        io.Writer

	session string
	timeout time.Duration
	asJSON  bool

	creds ports.Credentials
	ws    *workspace.Workspace
}

func newRootCmd(a *cli) *cobra.Command {
	root := &cobra.Command{
		Use:               "panelctl",
		Short:             "Administra la tienda de llantas desde la terminal",
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.authorize(cmd.Context())
		},
	}
	root.SetOut(a.out)

	root.PersistentFlags().StringVar(&a.session, "session", a.session, "cabecera Cookie de la sesión (o PANEL_SESSION)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "timeout total de la operación")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "salida JSON")

	root.AddCommand(a.productosCmd())
	root.AddCommand(a.pedidosCmd())
	root.AddCommand(a.perfilCmd())
	return root
}

// authorize monta el guard una vez por invocación y carga el workspace.
func (a *cli) authorize(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	a.creds = ports.Credentials{Cookie: a.session}
	d := a.guard.Check(ctx, a.creds)
	switch d.State {
	case session.Authorized:
		a.ws = a.workspaces.Acquire(d.Session.Identity)
		return nil
	case session.Unauthorized:
		if d.Reason == session.ReasonUnauthorized {
			return fmt.Errorf("%s: %w", domain.MsgForbidden, domain.ErrForbidden)
		}
		return fmt.Errorf("%s: %w", domain.MsgUnauthorized, domain.ErrUnauthorized)
	default:
		if d.Err == nil {
			return errors.New(domain.MsgUnexpected)
		}
		return fmt.Errorf("%s: %w", domain.UserMessage(d.Err), d.Err)
	}
}

func (a *cli) load(cmd *cobra.Command, force bool) (context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
	if err := a.ws.Load(ctx, a.creds, force); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("%s: %w", domain.UserMessage(err), err)
	}
	return ctx, cancel, nil
}

func (a *cli) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// productos
// ──────────────────────────────────────────────────────────────────────────────

func (a *cli) productosCmd() *cobra.Command {
	var (
		q       string
		filters entity.FilterState
		sortRaw string
	)
	cmd := &cobra.Command{
		Use:   "productos",
		Short: "Lista el catálogo con búsqueda, filtros y orden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cancel, err := a.load(cmd, false)
			if err != nil {
				return err
			}
			defer cancel()

			filters.Sort = catalog.ParseSort(sortRaw)
			view := catalog.View(a.ws.ProductRows().All(), q, filters)
			if a.asJSON {
				items := make([]dto.ProductResponse, 0, len(view))
				for _, p := range view {
					items = append(items, dto.FromProduct(p))
				}
				return a.printJSON(items)
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSKU\tNOMBRE\tMARCA\tMEDIDA\tTIPO\tPRECIO\tSTOCK")
			for _, p := range view {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d/%d R%d\t%s\t%s\t%d\n",
					p.ID, p.SKU, p.Nombre, p.Marca, p.Ancho, p.Perfil, p.Aro, p.TipoVehiculo, p.Precio.StringFixed(2), p.Stock)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&q, "buscar", "q", "", "texto en nombre, marca o SKU")
	cmd.Flags().StringVar(&filters.Ancho, "ancho", "", "ancho exacto")
	cmd.Flags().StringVar(&filters.Perfil, "perfil", "", "perfil exacto")
	cmd.Flags().StringVar(&filters.Aro, "aro", "", "aro exacto")
	cmd.Flags().StringVar(&filters.TipoVehiculo, "tipo", "", "Auto, Camioneta o Camión")
	cmd.Flags().StringVar(&sortRaw, "orden", string(entity.SortNewest), "newest, price-asc, price-desc, stock-low")

	del := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel, err := a.load(cmd, false)
			if err != nil {
				return err
			}
			defer cancel()
			if err := a.ws.Mutator().DeleteProduct(ctx, a.creds, id); err != nil {
				return fmt.Errorf("%s: %w", domain.UserMessage(err), err)
			}
			fmt.Fprintf(a.out, "producto %d eliminado\n", id)
			return nil
		},
	}
	cmd.AddCommand(del)
	return cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// pedidos
// ──────────────────────────────────────────────────────────────────────────────

func (a *cli) pedidosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pedidos",
		Short: "Lista los pedidos de la tienda",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cancel, err := a.load(cmd, false)
			if err != nil {
				return err
			}
			defer cancel()

			orders := a.ws.OrderRows().All()
			if a.asJSON {
				items := make([]dto.OrderResponse, 0, len(orders))
				for _, o := range orders {
					items = append(items, dto.FromOrder(o))
				}
				return a.printJSON(items)
			}
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCLIENTE\tESTADO\tTOTAL")
			for _, o := range orders {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", o.ID, o.Cliente.DisplayName(), o.Estado, o.Total.StringFixed(2))
			}
			return tw.Flush()
		},
	}

	estado := &cobra.Command{
		Use:   "estado <id> <estado>",
		Short: "Cambia el estado de un pedido",
		Long: `Cambia el estado de un pedido. Estados válidos:
  pendiente, pagado, enviado, entregado, cancelado`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel, err := a.load(cmd, false)
			if err != nil {
				return err
			}
			defer cancel()

			o, err := a.ws.Mutator().ChangeOrderStatus(ctx, a.creds, id, entity.OrderStatus(args[1]))
			if err != nil {
				return fmt.Errorf("%s: %w", domain.UserMessage(err), err)
			}
			fmt.Fprintf(a.out, "pedido %d: %s\n", o.ID, o.Estado)
			return nil
		},
	}

	var outPath string
	export := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta los pedidos a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel, err := a.load(cmd, false)
			if err != nil {
				return err
			}
			defer cancel()

			now := time.Now()
			doc, err := a.exporter.GenerateOrdersPDF(ctx, ports.OrdersReport{
				Store:       a.storeName,
				GeneratedBy: a.ws.Profile().Name,
				GeneratedAt: now,
				Orders:      a.ws.OrderRows().All(),
			})
			if err != nil {
				return fmt.Errorf("generar PDF: %w", err)
			}
			if outPath == "" {
				outPath = fmt.Sprintf("pedidos-%s.pdf", now.Format("20060102"))
			}
			if err := os.WriteFile(outPath, doc, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", outPath, err)
			}
			fmt.Fprintf(a.out, "%d pedidos exportados a %s\n", a.ws.OrderRows().Len(), outPath)
			return nil
		},
	}
	export.Flags().StringVarP(&outPath, "salida", "o", "", "archivo destino (por defecto pedidos-AAAAMMDD.pdf)")

	cmd.AddCommand(estado, export)
	return cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// perfil
// ──────────────────────────────────────────────────────────────────────────────

func (a *cli) perfilCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "perfil",
		Short: "Muestra la identidad de la sesión",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p := dto.FromProfile(a.ws.Profile())
			if a.asJSON {
				return a.printJSON(p)
			}
			fmt.Fprintf(a.out, "%s <%s> rol=%s id=%d\n", p.Name, p.Email, p.Rol, p.ID)
			if exp, ok := sessionExpiry(a.creds.Cookie); ok {
				fmt.Fprintf(a.out, "sesión vence: %s\n", exp.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q: %w", raw, domain.ErrInvalidInput)
	}
	return id, nil
}
