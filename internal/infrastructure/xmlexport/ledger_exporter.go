// Package xmlexport genera la exportación XML del ledger: todas las entradas
// y salidas registradas, pensada para intercambio con sistemas contables.
package xmlexport

import (
	"context"
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/report"
)

var _ report.LedgerExporter = (*LedgerExporter)(nil)

// LedgerExporter implementa report.LedgerExporter usando etree.
type LedgerExporter struct {
	appName string
	now     func() time.Time
}

// NewLedgerExporter construye el exportador.
func NewLedgerExporter(appName string) *LedgerExporter {
	return &LedgerExporter{appName: appName, now: time.Now}
}

// ExportLedger serializa el ledger completo:
//
//	<ledger app="..." generated_at="...">
//	  <receipts count="N"> <transaction .../> ... </receipts>
//	  <issues count="M"> <transaction .../> ... </issues>
//	</ledger>
func (e *LedgerExporter) ExportLedger(_ context.Context, receipts, issues []dto.TransactionResponse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ledger")
	root.CreateAttr("app", e.appName)
	root.CreateAttr("generated_at", e.now().UTC().Format(time.RFC3339))

	writeSection(root, "receipts", receipts)
	writeSection(root, "issues", issues)

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar ledger: %w", err)
	}
	return out, nil
}

func writeSection(root *etree.Element, name string, txs []dto.TransactionResponse) {
	section := root.CreateElement(name)
	section.CreateAttr("count", fmt.Sprintf("%d", len(txs)))
	for _, tx := range txs {
		writeTransaction(section, tx)
	}
}

func writeTransaction(parent *etree.Element, tx dto.TransactionResponse) {
	el := parent.CreateElement("transaction")
	el.CreateAttr("id", tx.ID)
	el.CreateAttr("kind", tx.Kind)

	el.CreateElement("item").SetText(tx.ItemName)
	el.CreateElement("unit").SetText(tx.Unit)
	el.CreateElement("quantity").SetText(fmt.Sprintf("%d", tx.Quantity))
	el.CreateElement("unit_price").SetText(tx.UnitPrice.StringFixed(2))
	el.CreateElement("total_amount").SetText(tx.TotalAmount.StringFixed(2))
	el.CreateElement("counterparty").SetText(tx.Counterparty)
	if tx.Purpose != "" {
		el.CreateElement("purpose").SetText(tx.Purpose)
	}
	if tx.BatchNumber != "" {
		el.CreateElement("batch_number").SetText(tx.BatchNumber)
	}
	el.CreateElement("operator").SetText(tx.OperatorName)
	el.CreateElement("occurred_at").SetText(tx.OccurredAt.UTC().Format(time.RFC3339))
	if tx.Notes != "" {
		el.CreateElement("notes").SetText(tx.Notes)
	}
}
