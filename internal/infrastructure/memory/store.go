// Package memory implementa los puertos de repository en memoria.
// Mantiene las mismas reglas que el esquema PostgreSQL (unicidad por empresa, baja lógica)
// y se usa en tests de casos de uso y de handlers HTTP.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// Store agrupa todas las tablas bajo un mismo mutex.
type Store struct {
	mu sync.RWMutex

	companies  *table[*companyRow]
	currencies *table[*currencyRow]
	fiscal     *table[*fiscalRow]
	accounts   *table[*accountRow]
	journals   *table[*journalRow]
	taxCodes   *table[*taxCodeRow]
	partners   *table[*partnerRow]
	products   *table[*productRow]
	warehouses *table[*warehouseRow]
	invoices   *table[*invoiceRow]
	payments   *table[*paymentRow]
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		companies:  newTable[*companyRow](),
		currencies: newTable[*currencyRow](),
		fiscal:     newTable[*fiscalRow](),
		accounts:   newTable[*accountRow](),
		journals:   newTable[*journalRow](),
		taxCodes:   newTable[*taxCodeRow](),
		partners:   newTable[*partnerRow](),
		products:   newTable[*productRow](),
		warehouses: newTable[*warehouseRow](),
		invoices:   newTable[*invoiceRow](),
		payments:   newTable[*paymentRow](),
	}
}

// row es lo que toda fila expone a la tabla genérica.
type row interface {
	id() string
	setID(string)
	// key es la clave única (vacía = sin restricción).
	key() string
}

type table[R row] struct {
	rows map[string]R
}

func newTable[R row]() *table[R] {
	return &table[R]{rows: make(map[string]R)}
}

func (t *table[R]) insert(r R) error {
	if r.id() == "" {
		r.setID(uuid.New().String())
	}
	if _, ok := t.rows[r.id()]; ok {
		return domain.ErrDuplicate
	}
	if t.keyTaken(r.key(), "") {
		return domain.ErrDuplicate
	}
	t.rows[r.id()] = r
	return nil
}

func (t *table[R]) update(r R) error {
	if _, ok := t.rows[r.id()]; !ok {
		return domain.ErrNotFound
	}
	if t.keyTaken(r.key(), r.id()) {
		return domain.ErrDuplicate
	}
	t.rows[r.id()] = r
	return nil
}

func (t *table[R]) keyTaken(key, excludeID string) bool {
	if key == "" {
		return false
	}
	for id, other := range t.rows {
		if id != excludeID && other.key() == key {
			return true
		}
	}
	return false
}

func (t *table[R]) get(id string) (R, bool) {
	r, ok := t.rows[id]
	return r, ok
}

func (t *table[R]) find(match func(R) bool) (R, bool) {
	for _, r := range t.rows {
		if match(r) {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// filter devuelve las filas que cumplen match, ordenadas con less.
func (t *table[R]) filter(match func(R) bool, less func(a, b R) bool) []R {
	out := make([]R, 0)
	for _, r := range t.rows {
		if match == nil || match(r) {
			out = append(out, r)
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func companyKey(companyID, code string) string {
	return companyID + "\x00" + code
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// TxRunner ejecuta fn bajo el lock exclusivo del Store: equivale a una transacción serializable.
// Si fn falla, las facturas modificadas se restauran.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el Store.
func (s *Store) NewTxRunner() *TxRunner {
	return &TxRunner{store: s}
}

// RunSettlement ver billing.SettlementTxRunner.
func (r *TxRunner) RunSettlement(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]*invoiceRow, len(s.invoices.rows))
	for id, row := range s.invoices.rows {
		snapshot[id] = row
	}
	if err := fn(&InvoiceRepo{s: s, locked: true}); err != nil {
		s.invoices.rows = snapshot
		return err
	}
	return nil
}
