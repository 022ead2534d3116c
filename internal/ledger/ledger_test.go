package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bus_ledger/internal/models"
	"bus_ledger/internal/storage"
)

// failingStore accepts loads but rejects every save once armed.
type failingStore struct {
	*storage.MemoryStore
	fail bool
}

func (s *failingStore) Save(ctx context.Context, blobs ...storage.Blob) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.MemoryStore.Save(ctx, blobs...)
}

func openTestLedger(t *testing.T, store storage.BlobStore) *Ledger {
	t.Helper()
	l, err := Open(context.Background(), store)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	return l
}

func mustBus(t *testing.T, l *Ledger, typ, driver, controller string) models.Bus {
	t.Helper()
	bus, err := l.SaveBus(context.Background(), Create(BusFields{
		Type:           typ,
		DriverName:     driver,
		ControllerName: controller,
		PlateNumber:    "LT-" + driver,
	}))
	if err != nil {
		t.Fatalf("save bus: %v", err)
	}
	return bus
}

func mustRemittance(t *testing.T, l *Ledger, busID int, date string, driver, controller int64) models.Remittance {
	t.Helper()
	rem, err := l.SaveRemittance(context.Background(), Create(RemittanceFields{
		BusID:            busID,
		Date:             date,
		DriverAmount:     decimal.NewFromInt(driver),
		ControllerAmount: decimal.NewFromInt(controller),
	}))
	if err != nil {
		t.Fatalf("save remittance: %v", err)
	}
	return rem
}

func mustEmployee(t *testing.T, l *Ledger, busID int) models.Employee {
	t.Helper()
	emp, err := l.SaveEmployee(context.Background(), Create(EmployeeFields{
		BusID:            busID,
		DriverSalary:     decimal.NewFromInt(100000),
		ControllerSalary: decimal.NewFromInt(80000),
	}))
	if err != nil {
		t.Fatalf("save employee: %v", err)
	}
	return emp
}

func TestOpenEmptyStore(t *testing.T) {
	l := openTestLedger(t, storage.NewMemoryStore())
	s := l.Snapshot()
	if len(s.Buses) != 0 || len(s.Remittances) != 0 || len(s.Employees) != 0 {
		t.Fatalf("expected empty collections, got %+v", s)
	}
}

func TestOpenRejectsCorruptBlob(t *testing.T) {
	store := storage.NewMemoryStore()
	_ = store.Save(context.Background(), storage.Blob{Key: storage.KeyBuses, Data: []byte("{not json")})
	if _, err := Open(context.Background(), store); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestIDsAreUniqueAndIncreasing(t *testing.T) {
	l := openTestLedger(t, storage.NewMemoryStore())
	prev := 0
	for i := 0; i < 5; i++ {
		bus := mustBus(t, l, "Standard", "d", "c")
		if bus.ID <= prev {
			t.Fatalf("id %d not greater than previous %d", bus.ID, prev)
		}
		prev = bus.ID
	}

	// removing the highest id frees it, removing a lower one does not change the next id
	if ok, _ := l.RemoveBus(context.Background(), 2); !ok {
		t.Fatalf("remove bus 2")
	}
	if bus := mustBus(t, l, "Standard", "d", "c"); bus.ID != 6 {
		t.Fatalf("expected id 6, got %d", bus.ID)
	}
}

func TestSaveBusUpdate(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t, storage.NewMemoryStore())
	bus := mustBus(t, l, "Standard", "Alain", "Paul")

	updated, err := l.SaveBus(ctx, Update(bus.ID, BusFields{Type: "VIP", DriverName: "Jean"}))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != bus.ID || updated.Type != "VIP" || updated.ControllerName != "" {
		t.Fatalf("update should replace every field but the id: %+v", updated)
	}
	if got, _ := l.Bus(bus.ID); got != updated {
		t.Fatalf("stored bus differs: %+v", got)
	}
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	l := openTestLedger(t, store)
	bus := mustBus(t, l, "Standard", "d", "c")

	if _, err := l.SaveBus(ctx, Update(99, BusFields{Type: "x"})); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := l.SaveRemittance(ctx, Update(99, RemittanceFields{BusID: bus.ID})); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := l.SaveEmployee(ctx, Update(99, EmployeeFields{BusID: bus.ID})); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(l.Buses()) != 1 || len(l.Remittances()) != 0 || len(l.Employees()) != 0 {
		t.Fatalf("not-found update must not change state")
	}
}

func TestRemoveMissingIsSilent(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t, storage.NewMemoryStore())
	for name, remove := range map[string]func(context.Context, int) (bool, error){
		"bus":        l.RemoveBus,
		"remittance": l.RemoveRemittance,
		"employee":   l.RemoveEmployee,
	} {
		removed, err := remove(ctx, 3)
		if err != nil || removed {
			t.Fatalf("%s: expected silent no-op, got removed=%v err=%v", name, removed, err)
		}
	}
}

func TestRemittanceTotalAndSnapshot(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t, storage.NewMemoryStore())
	bus := mustBus(t, l, "Standard", "Alain", "Paul")

	rem := mustRemittance(t, l, bus.ID, "2024-03-05", 50000, 30000)
	if !rem.TotalAmount.Equal(decimal.NewFromInt(80000)) {
		t.Fatalf("total = %s", rem.TotalAmount)
	}
	if rem.BusType != "Standard" || rem.DriverName != "Alain" || rem.ControllerName != "Paul" || rem.PlateNumber != "LT-Alain" {
		t.Fatalf("bus details not copied: %+v", rem)
	}

	rem, err := l.SaveRemittance(ctx, Update(rem.ID, RemittanceFields{
		BusID:            bus.ID,
		Date:             "2024-03-06",
		DriverAmount:     decimal.NewFromFloat(1.5),
		ControllerAmount: decimal.NewFromFloat(2.25),
	}))
	if err != nil {
		t.Fatalf("update remittance: %v", err)
	}
	if !rem.TotalAmount.Equal(rem.DriverAmount.Add(rem.ControllerAmount)) || rem.TotalAmount.String() != "3.75" {
		t.Fatalf("total not recomputed on update: %s", rem.TotalAmount)
	}

	// editing the bus later does not rewrite the copies
	if _, err := l.SaveBus(ctx, Update(bus.ID, BusFields{Type: "VIP", DriverName: "Jean", ControllerName: "Marc"})); err != nil {
		t.Fatalf("update bus: %v", err)
	}
	got := l.Remittances()[0]
	if got.DriverName != "Alain" || got.BusType != "Standard" {
		t.Fatalf("remittance copy changed after bus edit: %+v", got)
	}
}

func TestRemittanceRequiresBus(t *testing.T) {
	l := openTestLedger(t, storage.NewMemoryStore())
	_, err := l.SaveRemittance(context.Background(), Create(RemittanceFields{BusID: 1, Date: "2024-03-05"}))
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
	if len(l.Remittances()) != 0 {
		t.Fatalf("rejected remittance was stored")
	}
}

func TestEmployeeUniquenessPerBus(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t, storage.NewMemoryStore())
	b1 := mustBus(t, l, "Standard", "Alain", "Paul")
	b2 := mustBus(t, l, "Standard", "Jean", "Marc")

	emp := mustEmployee(t, l, b1.ID)
	if emp.DriverName != "Alain" || emp.ControllerName != "Paul" {
		t.Fatalf("names not copied from bus: %+v", emp)
	}

	if _, err := l.SaveEmployee(ctx, Create(EmployeeFields{BusID: b1.ID})); !errors.Is(err, ErrDuplicateAssignment) {
		t.Fatalf("expected ErrDuplicateAssignment, got %v", err)
	}

	edited, err := l.SaveEmployee(ctx, Update(emp.ID, EmployeeFields{
		BusID:        b1.ID,
		DriverSalary: decimal.NewFromInt(120000),
	}))
	if err != nil {
		t.Fatalf("editing the same employee should succeed: %v", err)
	}
	if edited.ID != emp.ID || !edited.DriverSalary.Equal(decimal.NewFromInt(120000)) {
		t.Fatalf("unexpected edit result: %+v", edited)
	}

	other := mustEmployee(t, l, b2.ID)
	if _, err := l.SaveEmployee(ctx, Update(other.ID, EmployeeFields{BusID: b1.ID})); !errors.Is(err, ErrDuplicateAssignment) {
		t.Fatalf("moving an employee onto a taken bus should fail, got %v", err)
	}
	if len(l.Employees()) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(l.Employees()))
	}
}

func TestEmployeeRequiresBus(t *testing.T) {
	l := openTestLedger(t, storage.NewMemoryStore())
	if _, err := l.SaveEmployee(context.Background(), Create(EmployeeFields{BusID: 4})); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestRemoveBusCascades(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t, storage.NewMemoryStore())
	b1 := mustBus(t, l, "Standard", "Alain", "Paul")
	b2 := mustBus(t, l, "VIP", "Jean", "Marc")

	mustRemittance(t, l, b1.ID, "2024-03-05", 1, 1)
	mustRemittance(t, l, b2.ID, "2024-03-05", 2, 2)
	mustRemittance(t, l, b1.ID, "2024-04-05", 3, 3)
	mustEmployee(t, l, b1.ID)
	keptEmp := mustEmployee(t, l, b2.ID)

	removed, err := l.RemoveBus(ctx, b1.ID)
	if err != nil || !removed {
		t.Fatalf("remove bus: removed=%v err=%v", removed, err)
	}

	s := l.Snapshot()
	if len(s.Buses) != 1 || s.Buses[0].ID != b2.ID {
		t.Fatalf("unexpected buses: %+v", s.Buses)
	}
	if len(s.Remittances) != 1 || s.Remittances[0].BusID != b2.ID {
		t.Fatalf("unexpected remittances: %+v", s.Remittances)
	}
	if len(s.Employees) != 1 || s.Employees[0].ID != keptEmp.ID {
		t.Fatalf("unexpected employees: %+v", s.Employees)
	}
}

func TestRemoveSingleRecords(t *testing.T) {
	ctx := context.Background()
	l := openTestLedger(t, storage.NewMemoryStore())
	bus := mustBus(t, l, "Standard", "Alain", "Paul")
	rem := mustRemittance(t, l, bus.ID, "2024-03-05", 1, 1)
	emp := mustEmployee(t, l, bus.ID)

	if ok, err := l.RemoveRemittance(ctx, rem.ID); !ok || err != nil {
		t.Fatalf("remove remittance: %v %v", ok, err)
	}
	if ok, err := l.RemoveEmployee(ctx, emp.ID); !ok || err != nil {
		t.Fatalf("remove employee: %v %v", ok, err)
	}
	if len(l.Buses()) != 1 {
		t.Fatalf("bus should survive removal of its records")
	}

	// the bus is free again
	mustEmployee(t, l, bus.ID)
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	l := openTestLedger(t, store)
	bus := mustBus(t, l, "Standard", "Alain", "Paul")
	mustRemittance(t, l, bus.ID, "2024-03-05", 50000, 30000)
	mustEmployee(t, l, bus.ID)

	data, ok, err := store.Load(ctx, storage.KeyRemittances)
	if err != nil || !ok {
		t.Fatalf("remittances blob missing: ok=%v err=%v", ok, err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil || len(raw) != 1 {
		t.Fatalf("remittances blob is not a one-element array: %s", data)
	}

	reopened := openTestLedger(t, store)
	before, after := l.Snapshot(), reopened.Snapshot()
	if len(after.Buses) != 1 || after.Buses[0] != before.Buses[0] {
		t.Fatalf("buses differ after reload: %+v", after.Buses)
	}
	if len(after.Remittances) != 1 || !after.Remittances[0].TotalAmount.Equal(decimal.NewFromInt(80000)) {
		t.Fatalf("remittances differ after reload: %+v", after.Remittances)
	}
	if len(after.Employees) != 1 || after.Employees[0].BusID != bus.ID {
		t.Fatalf("employees differ after reload: %+v", after.Employees)
	}
}

func TestFailedSaveLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: storage.NewMemoryStore()}
	l := openTestLedger(t, store)
	bus := mustBus(t, l, "Standard", "Alain", "Paul")
	mustRemittance(t, l, bus.ID, "2024-03-05", 1, 1)
	mustEmployee(t, l, bus.ID)

	store.fail = true
	if _, err := l.SaveBus(ctx, Create(BusFields{Type: "VIP"})); err == nil {
		t.Fatalf("expected save error")
	}
	if _, err := l.SaveBus(ctx, Update(bus.ID, BusFields{Type: "VIP"})); err == nil {
		t.Fatalf("expected save error")
	}
	if removed, err := l.RemoveBus(ctx, bus.ID); err == nil || removed {
		t.Fatalf("expected remove error, got removed=%v err=%v", removed, err)
	}

	s := l.Snapshot()
	if len(s.Buses) != 1 || s.Buses[0].Type != "Standard" {
		t.Fatalf("buses changed despite failed save: %+v", s.Buses)
	}
	if len(s.Remittances) != 1 || len(s.Employees) != 1 {
		t.Fatalf("cascade applied despite failed save: %+v", s)
	}
}
