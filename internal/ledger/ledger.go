// Package ledger holds the three record collections of the business (buses,
// remittances, employees) and every mutation on them.
//
// Mutations are applied to copies of the collections, the touched blobs are
// written to the BlobStore in one Save call, and only then do the copies
// replace the live collections. A failed save leaves the ledger unchanged.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"bus_ledger/internal/models"
	"bus_ledger/internal/storage"
)

type Ledger struct {
	mu          sync.Mutex
	store       storage.BlobStore
	buses       *Collection[models.Bus]
	remittances *Collection[models.Remittance]
	employees   *Collection[models.Employee]
	log         *logrus.Entry
}

// Snapshot is a consistent copy of all three collections.
type Snapshot struct {
	Buses       []models.Bus
	Remittances []models.Remittance
	Employees   []models.Employee
}

// Open loads the collections from store. A key that was never saved is an empty collection.
func Open(ctx context.Context, store storage.BlobStore) (*Ledger, error) {
	l := &Ledger{
		store:       store,
		buses:       NewCollection[models.Bus](),
		remittances: NewCollection[models.Remittance](),
		employees:   NewCollection[models.Employee](),
		log:         logrus.WithField("component", "ledger"),
	}

	targets := []struct {
		key string
		dst json.Unmarshaler
	}{
		{storage.KeyBuses, l.buses},
		{storage.KeyRemittances, l.remittances},
		{storage.KeyEmployees, l.employees},
	}
	for _, t := range targets {
		data, ok, err := store.Load(ctx, t.key)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", t.key, err)
		}
		if !ok {
			continue
		}
		if err := t.dst.UnmarshalJSON(data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.key, err)
		}
	}

	l.log.WithFields(logrus.Fields{
		"buses":       l.buses.Len(),
		"remittances": l.remittances.Len(),
		"employees":   l.employees.Len(),
	}).Info("ledger loaded")
	return l, nil
}

func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Buses:       l.buses.List(),
		Remittances: l.remittances.List(),
		Employees:   l.employees.List(),
	}
}

func (l *Ledger) Buses() []models.Bus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buses.List()
}

func (l *Ledger) Remittances() []models.Remittance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remittances.List()
}

func (l *Ledger) Employees() []models.Employee {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.employees.List()
}

func (l *Ledger) Bus(id int) (models.Bus, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buses.Get(id)
}

func (l *Ledger) Employee(id int) (models.Employee, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.employees.Get(id)
}

// SaveBus creates a bus or replaces the fields of an existing one. Remittances
// and employees keep the bus details they were written with.
func (l *Ledger) SaveBus(ctx context.Context, req Request[BusFields]) (models.Bus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := req.Fields
	bus := models.Bus{
		Type:             f.Type,
		DriverName:       f.DriverName,
		ControllerName:   f.ControllerName,
		PlateNumber:      f.PlateNumber,
		RegistrationDate: f.RegistrationDate,
		AccountantName:   f.AccountantName,
	}

	buses := l.buses.Clone()
	if err := place(buses, req, &bus.ID); err != nil {
		return models.Bus{}, err
	}
	if _, ok := req.Target(); ok {
		buses.Replace(bus)
	} else {
		buses.Append(bus)
	}

	if err := l.persist(ctx, blobs{buses: buses}); err != nil {
		return models.Bus{}, err
	}
	l.buses = buses

	l.log.WithFields(logrus.Fields{"bus_id": bus.ID, "update": isUpdate(req)}).Info("bus saved")
	return bus, nil
}

// SaveRemittance creates or replaces a remittance for an existing bus. The
// bus details are copied into the record and the total is recomputed.
func (l *Ledger) SaveRemittance(ctx context.Context, req Request[RemittanceFields]) (models.Remittance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := req.Fields
	bus, ok := l.buses.Get(f.BusID)
	if !ok {
		return models.Remittance{}, ErrInvalidSelection
	}

	rem := models.Remittance{
		BusID:            bus.ID,
		BusType:          bus.Type,
		DriverName:       bus.DriverName,
		ControllerName:   bus.ControllerName,
		PlateNumber:      bus.PlateNumber,
		Date:             f.Date,
		DriverAmount:     f.DriverAmount,
		ControllerAmount: f.ControllerAmount,
		TotalAmount:      f.DriverAmount.Add(f.ControllerAmount),
		AccountantName:   f.AccountantName,
	}

	remittances := l.remittances.Clone()
	if err := place(remittances, req, &rem.ID); err != nil {
		return models.Remittance{}, err
	}
	if _, ok := req.Target(); ok {
		remittances.Replace(rem)
	} else {
		remittances.Append(rem)
	}

	if err := l.persist(ctx, blobs{remittances: remittances}); err != nil {
		return models.Remittance{}, err
	}
	l.remittances = remittances

	l.log.WithFields(logrus.Fields{
		"remittance_id": rem.ID,
		"bus_id":        rem.BusID,
		"total":         rem.TotalAmount.String(),
		"update":        isUpdate(req),
	}).Info("remittance saved")
	return rem, nil
}

// SaveEmployee creates or replaces the employee entry of a bus. A bus holds at
// most one entry; the entry being edited does not conflict with itself.
func (l *Ledger) SaveEmployee(ctx context.Context, req Request[EmployeeFields]) (models.Employee, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := req.Fields
	bus, ok := l.buses.Get(f.BusID)
	if !ok {
		return models.Employee{}, ErrInvalidSelection
	}

	self, _ := req.Target()
	if _, taken := l.employees.Find(func(e models.Employee) bool {
		return e.BusID == bus.ID && e.ID != self
	}); taken {
		return models.Employee{}, ErrDuplicateAssignment
	}

	emp := models.Employee{
		BusID:            bus.ID,
		DriverName:       bus.DriverName,
		ControllerName:   bus.ControllerName,
		DriverSalary:     f.DriverSalary,
		ControllerSalary: f.ControllerSalary,
		DriverPhoto:      f.DriverPhoto,
		ControllerPhoto:  f.ControllerPhoto,
	}

	employees := l.employees.Clone()
	if err := place(employees, req, &emp.ID); err != nil {
		return models.Employee{}, err
	}
	if _, ok := req.Target(); ok {
		employees.Replace(emp)
	} else {
		employees.Append(emp)
	}

	if err := l.persist(ctx, blobs{employees: employees}); err != nil {
		return models.Employee{}, err
	}
	l.employees = employees

	l.log.WithFields(logrus.Fields{"employee_id": emp.ID, "bus_id": emp.BusID, "update": isUpdate(req)}).
		Info("employee saved")
	return emp, nil
}

// RemoveBus deletes a bus together with every employee entry and remittance
// that references it. removed is false when the bus does not exist.
func (l *Ledger) RemoveBus(ctx context.Context, id int) (removed bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	buses := l.buses.Clone()
	if !buses.Remove(id) {
		return false, nil
	}
	employees := l.employees.Clone()
	droppedEmployees := employees.RemoveWhere(func(e models.Employee) bool { return e.BusID == id })
	remittances := l.remittances.Clone()
	droppedRemittances := remittances.RemoveWhere(func(r models.Remittance) bool { return r.BusID == id })

	if err := l.persist(ctx, blobs{buses: buses, remittances: remittances, employees: employees}); err != nil {
		return false, err
	}
	l.buses, l.employees, l.remittances = buses, employees, remittances

	l.log.WithFields(logrus.Fields{
		"bus_id":      id,
		"employees":   droppedEmployees,
		"remittances": droppedRemittances,
	}).Info("bus removed")
	return true, nil
}

func (l *Ledger) RemoveRemittance(ctx context.Context, id int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	remittances := l.remittances.Clone()
	if !remittances.Remove(id) {
		return false, nil
	}
	if err := l.persist(ctx, blobs{remittances: remittances}); err != nil {
		return false, err
	}
	l.remittances = remittances
	l.log.WithField("remittance_id", id).Info("remittance removed")
	return true, nil
}

func (l *Ledger) RemoveEmployee(ctx context.Context, id int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	employees := l.employees.Clone()
	if !employees.Remove(id) {
		return false, nil
	}
	if err := l.persist(ctx, blobs{employees: employees}); err != nil {
		return false, err
	}
	l.employees = employees
	l.log.WithField("employee_id", id).Info("employee removed")
	return true, nil
}

// place resolves the id of the record a request writes: the next free id for
// a creation, the target id for an update of an existing record.
func place[T Record, F any](c *Collection[T], req Request[F], id *int) error {
	target, ok := req.Target()
	if !ok {
		*id = c.NextID()
		return nil
	}
	if _, exists := c.Get(target); !exists {
		return fmt.Errorf("%w: id %d", ErrNotFound, target)
	}
	*id = target
	return nil
}

func isUpdate[F any](req Request[F]) bool {
	_, ok := req.Target()
	return ok
}

// blobs names the collections a mutation touched; nil ones are not written.
type blobs struct {
	buses       *Collection[models.Bus]
	remittances *Collection[models.Remittance]
	employees   *Collection[models.Employee]
}

func (l *Ledger) persist(ctx context.Context, b blobs) error {
	var out []storage.Blob
	add := func(key string, m json.Marshaler) error {
		data, err := m.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		out = append(out, storage.Blob{Key: key, Data: data})
		return nil
	}

	if b.buses != nil {
		if err := add(storage.KeyBuses, b.buses); err != nil {
			return err
		}
	}
	if b.remittances != nil {
		if err := add(storage.KeyRemittances, b.remittances); err != nil {
			return err
		}
	}
	if b.employees != nil {
		if err := add(storage.KeyEmployees, b.employees); err != nil {
			return err
		}
	}

	if err := l.store.Save(ctx, out...); err != nil {
		l.log.WithError(err).Error("failed to persist collections")
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}
