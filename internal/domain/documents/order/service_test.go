package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
	"storeadmin/internal/domain/catalogs/customer"
	"storeadmin/internal/infrastructure/storage/memory"
	"storeadmin/internal/listview"
)

type ledgerCall struct {
	customerID id.ID
	total      string
}

type fakeLedger struct {
	customers map[id.ID]*customer.Customer
	calls     []ledgerCall
}

func newFakeLedger(known ...*customer.Customer) *fakeLedger {
	f := &fakeLedger{customers: make(map[id.ID]*customer.Customer)}
	for _, c := range known {
		f.customers[c.ID] = c
	}
	return f
}

func (f *fakeLedger) GetByID(ctx context.Context, storeID, customerID id.ID) (*customer.Customer, error) {
	c, ok := f.customers[customerID]
	if !ok || c.StoreID != storeID {
		return nil, apperror.NewNotFound("customer", customerID.String())
	}
	return c, nil
}

func (f *fakeLedger) RecordOrder(ctx context.Context, storeID, customerID id.ID, total types.Money) error {
	f.calls = append(f.calls, ledgerCall{customerID: customerID, total: total.String()})
	return nil
}

func lines() []Line {
	return []Line{
		{ProductID: id.New(), Name: "Saree", Quantity: 2, UnitPrice: types.MustMoney("1200.50")},
		{ProductID: id.New(), Name: "Blouse", Quantity: 1, UnitPrice: types.MustMoney("350")},
	}
}

func TestNew_ComputesTotals(t *testing.T) {
	o := New(id.New(), "Asha", "inr", lines())

	assert.Equal(t, "2751", o.Total.String())
	assert.Equal(t, int64(3), o.ItemCount)
	assert.Equal(t, "INR", o.Currency)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, o.Number)
	assert.NoError(t, o.Validate(context.Background()))
}

func TestOrder_Validate(t *testing.T) {
	o := New(id.New(), "Asha", "INR", nil)
	assert.Error(t, o.Validate(context.Background()))

	o = New(id.New(), "Asha", "INR", []Line{{Name: "x", Quantity: 0, UnitPrice: types.Zero()}})
	appErr, ok := apperror.AsAppError(o.Validate(context.Background()))
	require.True(t, ok)
	assert.Equal(t, 0, appErr.Details["line"])

	o = New(id.New(), "Asha", "RUPEES", lines())
	assert.Error(t, o.Validate(context.Background()))
}

func TestOrder_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		path    []Status
		wantErr bool
		payment PaymentStatus
	}{
		{"happy path", []Status{StatusPaid, StatusShipped, StatusDelivered}, false, PaymentPaid},
		{"cancel unpaid", []Status{StatusCancelled}, false, PaymentUnpaid},
		{"cancel paid refunds", []Status{StatusPaid, StatusCancelled}, false, PaymentRefunded},
		{"skip payment", []Status{StatusShipped}, true, PaymentUnpaid},
		{"reopen delivered", []Status{StatusPaid, StatusShipped, StatusDelivered, StatusPending}, true, PaymentPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(id.New(), "Asha", "INR", lines())
			var err error
			for _, next := range tt.path {
				if err = o.TransitionTo(next); err != nil {
					break
				}
			}
			if tt.wantErr {
				assert.True(t, apperror.HasCode(err, apperror.CodeInvalidTransition))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.payment, o.PaymentStatus)
		})
	}
}

func TestService_CreateRecordsCustomerSpend(t *testing.T) {
	ctx := context.Background()
	storeID := id.New()
	asha := customer.New(storeID, "Asha", "asha@example.com", "", "Guntur")
	customerID := asha.ID
	ledger := newFakeLedger(asha)
	svc := NewService(memory.NewRepo("order", (*Order).Clone), ledger, 8)

	o := New(storeID, "Asha", "INR", lines())
	o.CustomerID = &customerID
	require.NoError(t, svc.Create(ctx, o))
	require.NoError(t, svc.Create(ctx, New(storeID, "Walk-in", "INR", lines())))

	assert.Equal(t, []ledgerCall{{customerID: customerID, total: "2751"}}, ledger.calls)
}

func TestService_CreateRejectsUnknownCustomer(t *testing.T) {
	ctx := context.Background()
	storeID := id.New()
	elsewhere := customer.New(id.New(), "Kiran", "kiran@example.com", "", "Nellore")
	ledger := newFakeLedger(elsewhere)
	svc := NewService(memory.NewRepo("order", (*Order).Clone), ledger, 8)

	tests := []struct {
		name       string
		customerID id.ID
	}{
		{"no such customer", id.New()},
		{"customer of another store", elsewhere.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(storeID, "Asha", "INR", lines())
			o.CustomerID = &tt.customerID

			err := svc.Create(ctx, o)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, "customerId", appErr.Details["field"])
		})
	}

	res, err := svc.List(ctx, storeID, listview.Query{})
	require.NoError(t, err)
	assert.Zero(t, res.TotalCount)
	assert.Empty(t, ledger.calls)
}

func TestService_UpdateStatusAndFilter(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewRepo("order", (*Order).Clone), nil, 8)
	storeID := id.New()

	var ids []id.ID
	for _, name := range []string{"Asha", "Ravi", "Meena"} {
		o := New(storeID, name, "INR", lines())
		require.NoError(t, svc.Create(ctx, o))
		ids = append(ids, o.ID)
	}

	paid, err := svc.UpdateStatus(ctx, storeID, ids[1], StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)

	_, err = svc.UpdateStatus(ctx, storeID, ids[0], StatusDelivered)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidTransition))

	res, err := svc.List(ctx, storeID, listview.Query{
		Criteria: []listview.Criterion{listview.SelectOne("status", string(StatusPending))},
		Sort:     listview.ParseSort("customerName"),
	})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Asha", res.Records[0].CustomerName)
	assert.Equal(t, "Meena", res.Records[1].CustomerName)
}
