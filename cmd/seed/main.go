// Generador de datos de ejemplo. Puebla el almacén con categorías, items,
// operadores y un historial de entradas y salidas de los últimos 30 días,
// pasando por los mismos casos de uso que la API.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/alerting"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/status"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

type seedCategory struct {
	name        string
	description string
	parent      string // nombre del padre, "" = raíz
}

type seedItem struct {
	code, name, category, spec, unit, supplier string
	purchase, selling                          float64
	minStock, maxStock                         int64
}

var categories = []seedCategory{
	{"Oficina", "Papelería y útiles de oficina", ""},
	{"Electrónica", "Equipos de cómputo e impresión", ""},
	{"Consumibles", "Tóner, tintas y papel", ""},
	{"Herramientas", "Herramientas de mantenimiento", ""},
	{"Aseo", "Productos de limpieza", ""},
	{"Dotación", "Elementos de protección personal", ""},

	{"Papelería", "Escritura y papel", "Oficina"},
	{"Archivadores", "Organización de documentos", "Oficina"},
	{"Cómputo", "Equipos de escritorio y portátiles", "Electrónica"},
	{"Impresión", "Impresoras y escáneres", "Electrónica"},
	{"Tóner y tintas", "Consumibles de impresión", "Consumibles"},
	{"Herramienta manual", "Destornilladores, alicates", "Herramientas"},
	{"Protección", "Guantes, cascos, gafas", "Dotación"},
}

var items = []seedItem{
	{"OF-001", "Resma papel carta", "Papelería", "75g, 500 hojas", "resma", "Papeles Andina", 12000, 15000, 10, 200},
	{"OF-002", "Esfero negro", "Papelería", "Tinta gel 0.5mm, caja x12", "caja", "Distripapel", 8000, 11000, 20, 500},
	{"OF-003", "Carpeta legajadora", "Archivadores", "Tamaño oficio", "unidad", "Distripapel", 1500, 2500, 30, 300},
	{"EL-001", "Portátil 14 pulgadas", "Cómputo", "16GB RAM, 512GB SSD", "unidad", "Compumax", 3200000, 3800000, 2, 20},
	{"EL-002", "Impresora láser", "Impresión", "Monocromática, red", "unidad", "Compumax", 850000, 990000, 1, 10},
	{"EL-003", "Monitor 24 pulgadas", "Cómputo", "IPS FullHD", "unidad", "Compumax", 620000, 740000, 3, 30},
	{"CO-001", "Tóner negro", "Tóner y tintas", "Rendimiento 3000 páginas", "unidad", "Suministros JR", 180000, 230000, 5, 50},
	{"CO-002", "Kit tintas CMYK", "Tóner y tintas", "Botellas 70ml", "kit", "Suministros JR", 95000, 120000, 3, 30},
	{"HE-001", "Juego destornilladores", "Herramienta manual", "24 piezas", "juego", "Ferreindustrial", 65000, 85000, 2, 20},
	{"HE-002", "Alicate universal", "Herramienta manual", "8 pulgadas aislado", "unidad", "Ferreindustrial", 28000, 38000, 5, 50},
	{"AS-001", "Jabón líquido", "Aseo", "Galón multiusos", "galón", "Químicos del Sur", 22000, 30000, 5, 50},
	{"AS-002", "Bolsas de basura", "Aseo", "Calibre 1.4, paquete x10", "paquete", "Químicos del Sur", 6000, 9000, 10, 100},
	{"DO-001", "Guantes de nitrilo", "Protección", "Caja x100, talla M", "caja", "Seguridad Total", 32000, 42000, 20, 200},
	{"DO-002", "Casco de seguridad", "Protección", "Tipo I con ratchet", "unidad", "Seguridad Total", 25000, 36000, 5, 50},
}

var operators = []dto.CreateUserRequest{
	{Username: "mrojas", Password: "clave-mrojas", FullName: "Marcela Rojas", Role: "admin"},
	{Username: "jlopez", Password: "clave-jlopez", FullName: "Julián López", Role: "operador"},
	{Username: "apardo", Password: "clave-apardo", FullName: "Adriana Pardo", Role: "operador"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	statusUC := status.New(statusRepo, balanceRepo)
	alertUC := alerting.New(statusUC)
	ledgerUC := ledger.New(txRunner, itemRepo, alertUC)
	catalogUC := catalog.New(categoryRepo, itemRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Operadores
	operatorIDs := make([]string, 0, len(operators))
	for _, in := range operators {
		u, err := userUC.AddUser(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("username", in.Username).Msg("crear operador")
		}
		operatorIDs = append(operatorIDs, u.ID)
	}
	log.Info().Int("total", len(operatorIDs)).Msg("operadores creados")

	// Categorías: raíces primero, luego hijas con el padre resuelto por nombre
	categoryIDByName := make(map[string]string, len(categories))
	for _, c := range categories {
		in := dto.CreateCategoryRequest{Name: c.name, Description: c.description}
		if c.parent != "" {
			in.ParentID = categoryIDByName[c.parent]
		}
		created, err := catalogUC.AddCategory(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("categoria", c.name).Msg("crear categoría")
		}
		categoryIDByName[c.name] = created.ID
	}
	log.Info().Int("total", len(categoryIDByName)).Msg("categorías creadas")

	// Items
	itemIDs := make([]string, 0, len(items))
	purchaseByID := make(map[string]float64, len(items))
	sellingByID := make(map[string]float64, len(items))
	for _, it := range items {
		created, err := catalogUC.AddItem(ctx, dto.CreateItemRequest{
			Code:          it.code,
			Name:          it.name,
			CategoryID:    categoryIDByName[it.category],
			Specification: it.spec,
			Unit:          it.unit,
			Supplier:      it.supplier,
			PurchasePrice: decimal.NewFromFloat(it.purchase),
			SellingPrice:  decimal.NewFromFloat(it.selling),
			MinStock:      it.minStock,
			MaxStock:      it.maxStock,
		})
		if err != nil {
			log.Fatal().Err(err).Str("code", it.code).Msg("crear item")
		}
		itemIDs = append(itemIDs, created.ID)
		purchaseByID[created.ID] = it.purchase
		sellingByID[created.ID] = it.selling
	}
	log.Info().Int("total", len(itemIDs)).Msg("items creados")

	// Entradas: 2 a 5 por item, con lote fechado y precio con variación del 10%
	var receipts int
	for _, id := range itemIDs {
		n := 2 + rnd.Intn(4)
		for i := 0; i < n; i++ {
			day := time.Now().AddDate(0, 0, -rnd.Intn(30))
			price := purchaseByID[id] * (0.9 + rnd.Float64()*0.2)
			err := ledgerUC.Receive(ctx, ledger.ReceiveInput{
				ItemID:      id,
				Quantity:    int64(10 + rnd.Intn(91)),
				UnitPrice:   decimal.NewFromFloat(price).Round(2),
				Supplier:    "Proveedor de ejemplo",
				BatchNumber: fmt.Sprintf("LOTE%s%02d", day.Format("20060102"), i+1),
				OperatorID:  operatorIDs[rnd.Intn(len(operatorIDs))],
				Notes:       "carga inicial",
			})
			if err != nil {
				log.Fatal().Err(err).Str("item_id", id).Msg("registrar entrada")
			}
			receipts++
		}
	}
	log.Info().Int("total", receipts).Msg("entradas registradas")

	// Salidas: 1 a 3 por item, acotadas al stock disponible
	var issues int
	for _, id := range itemIDs {
		n := 1 + rnd.Intn(3)
		for i := 0; i < n; i++ {
			current, err := statusUC.CurrentStock(ctx, id)
			if err != nil {
				log.Fatal().Err(err).Str("item_id", id).Msg("consultar stock")
			}
			if current == 0 {
				break
			}
			max := int64(20)
			if current < max {
				max = current
			}
			price := sellingByID[id] * (0.95 + rnd.Float64()*0.1)
			err = ledgerUC.Issue(ctx, ledger.IssueInput{
				ItemID:     id,
				Quantity:   1 + rnd.Int63n(max),
				UnitPrice:  decimal.NewFromFloat(price).Round(2),
				Recipient:  "Área solicitante",
				Purpose:    "consumo interno",
				OperatorID: operatorIDs[rnd.Intn(len(operatorIDs))],
			})
			if err != nil {
				log.Fatal().Err(err).Str("item_id", id).Msg("registrar salida")
			}
			issues++
		}
	}
	log.Info().Int("total", issues).Msg("salidas registradas")

	log.Info().Msg("datos de ejemplo generados")
}
