package vouchers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	internalShared "github.com/meridian-erp/meridian-erp/internal/shared"
	_ "github.com/meridian-erp/meridian-erp/testing"
)

type memoryVoucherRepo struct {
	mu       sync.Mutex
	vouchers map[uuid.UUID]Voucher
}

func newMemoryVoucherRepo() *memoryVoucherRepo {
	return &memoryVoucherRepo{vouchers: make(map[uuid.UUID]Voucher)}
}

func (r *memoryVoucherRepo) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, r)
}

func (r *memoryVoucherRepo) Get(ctx context.Context, id uuid.UUID) (*Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vouchers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (r *memoryVoucherRepo) List(ctx context.Context) ([]Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Voucher, 0, len(r.vouchers))
	for _, v := range r.vouchers {
		out = append(out, v)
	}
	return out, nil
}

func (r *memoryVoucherRepo) CountByType(ctx context.Context, t Type) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, v := range r.vouchers {
		if v.Type == t {
			count++
		}
	}
	return count, nil
}

func (r *memoryVoucherRepo) Create(ctx context.Context, voucher Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vouchers[voucher.ID] = voucher
	return nil
}

func (r *memoryVoucherRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vouchers[id]; !ok {
		return ErrNotFound
	}
	delete(r.vouchers, id)
	return nil
}

func (r *memoryVoucherRepo) LedgerMovement(ctx context.Context, ledgerID uuid.UUID) (float64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var debit, credit float64
	for _, v := range r.vouchers {
		for _, e := range v.Entries {
			if e.LedgerID != ledgerID {
				continue
			}
			if e.Side == SideDebit {
				debit += e.Amount
			} else {
				credit += e.Amount
			}
		}
	}
	return debit, credit, nil
}

type staticDirectory map[uuid.UUID]string

func (d staticDirectory) LedgerName(ctx context.Context, id uuid.UUID) (string, bool) {
	name, ok := d[id]
	return name, ok
}

type countingBumper struct{ bumps int }

func (b *countingBumper) Bump(ctx context.Context) error {
	b.bumps++
	return nil
}

type recordingAudit struct{ logs []internalShared.AuditLog }

func (a *recordingAudit) Record(ctx context.Context, log internalShared.AuditLog) error {
	a.logs = append(a.logs, log)
	return nil
}

func balancedRequest(cash, sales uuid.UUID) CreateVoucherRequest {
	return CreateVoucherRequest{
		Type: string(TypeSales),
		Date: "2024-03-15",
		Entries: []EntryInput{
			{LedgerID: cash, Amount: 1180, Side: string(SideDebit)},
			{LedgerID: sales, Amount: 1180, Side: string(SideCredit)},
		},
	}
}

func TestCreateGeneratesSequentialNumbers(t *testing.T) {
	repo := newMemoryVoucherRepo()
	cash, sales := uuid.New(), uuid.New()
	svc := NewService(repo, staticDirectory{cash: "Cash", sales: "Sales A/c"}, nil, nil)

	first, err := svc.Create(context.Background(), balancedRequest(cash, sales))
	require.NoError(t, err)
	require.Equal(t, "SLS-2403-0001", first.Number)

	second, err := svc.Create(context.Background(), balancedRequest(cash, sales))
	require.NoError(t, err)
	require.Equal(t, "SLS-2403-0002", second.Number)

	// A different type runs its own sequence.
	payment := CreateVoucherRequest{
		Type: string(TypePayment),
		Date: "2024-03-16",
		Entries: []EntryInput{
			{LedgerID: sales, Amount: 50, Side: string(SideDebit)},
			{LedgerID: cash, Amount: 50, Side: string(SideCredit)},
		},
	}
	third, err := svc.Create(context.Background(), payment)
	require.NoError(t, err)
	require.Equal(t, "PYT-2403-0001", third.Number)
}

func TestCreateDenormalizesLedgerNames(t *testing.T) {
	repo := newMemoryVoucherRepo()
	cash, sales := uuid.New(), uuid.New()
	svc := NewService(repo, staticDirectory{cash: "Cash"}, nil, nil)

	voucher, err := svc.Create(context.Background(), balancedRequest(cash, sales))
	require.NoError(t, err)
	require.Equal(t, "Cash", voucher.Entries[0].LedgerName)
	// Unknown ledger carries no name; reports fall back to a label.
	require.Empty(t, voucher.Entries[1].LedgerName)
}

func TestCreateRejectsUnbalanced(t *testing.T) {
	repo := newMemoryVoucherRepo()
	svc := NewService(repo, nil, nil, nil)
	req := CreateVoucherRequest{
		Type: string(TypeJournal),
		Date: "2024-03-15",
		Entries: []EntryInput{
			{LedgerID: uuid.New(), Amount: 100, Side: string(SideDebit)},
			{LedgerID: uuid.New(), Amount: 99.98, Side: string(SideCredit)},
		},
	}
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrUnbalanced)
	vs, _ := repo.List(context.Background())
	require.Empty(t, vs)
}

func TestCreateToleratesSubPaisaDrift(t *testing.T) {
	repo := newMemoryVoucherRepo()
	svc := NewService(repo, nil, nil, nil)
	req := CreateVoucherRequest{
		Type: string(TypeJournal),
		Date: "2024-03-15",
		Entries: []EntryInput{
			{LedgerID: uuid.New(), Amount: 100.001, Side: string(SideDebit)},
			{LedgerID: uuid.New(), Amount: 100.0009, Side: string(SideCredit)},
		},
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateBumpsCacheAndAudits(t *testing.T) {
	repo := newMemoryVoucherRepo()
	bumper := &countingBumper{}
	audit := &recordingAudit{}
	cash, sales := uuid.New(), uuid.New()
	svc := NewService(repo, nil, audit, bumper)

	voucher, err := svc.Create(context.Background(), balancedRequest(cash, sales))
	require.NoError(t, err)
	require.Equal(t, 1, bumper.bumps)
	require.Len(t, audit.logs, 1)
	require.Equal(t, "voucher.create", audit.logs[0].Action)

	require.NoError(t, svc.Delete(context.Background(), voucher.ID))
	require.Equal(t, 2, bumper.bumps)
	require.Equal(t, "voucher.delete", audit.logs[1].Action)
}

func TestDeleteMissingVoucher(t *testing.T) {
	svc := NewService(newMemoryVoucherRepo(), nil, nil, nil)
	err := svc.Delete(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateKeepsProvidedNumber(t *testing.T) {
	repo := newMemoryVoucherRepo()
	svc := NewService(repo, nil, nil, nil)
	cash, sales := uuid.New(), uuid.New()
	req := balancedRequest(cash, sales)
	req.Number = "SLS-CUSTOM-7"

	voucher, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "SLS-CUSTOM-7", voucher.Number)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		req  CreateVoucherRequest
		want error
	}{
		{
			name: "bad type",
			req:  CreateVoucherRequest{Type: "INVOICE", Date: "2024-03-15", Entries: []EntryInput{{LedgerID: uuid.New(), Amount: 1, Side: "DEBIT"}}},
			want: ErrInvalidType,
		},
		{
			name: "bad date",
			req:  CreateVoucherRequest{Type: "SALES", Date: "15-03-2024", Entries: []EntryInput{{LedgerID: uuid.New(), Amount: 1, Side: "DEBIT"}}},
			want: ErrInvalidDate,
		},
		{
			name: "no entries",
			req:  CreateVoucherRequest{Type: "SALES", Date: "2024-03-15"},
			want: ErrNoEntries,
		},
		{
			name: "non-positive amount",
			req:  CreateVoucherRequest{Type: "SALES", Date: "2024-03-15", Entries: []EntryInput{{LedgerID: uuid.New(), Amount: 0, Side: "DEBIT"}}},
			want: ErrNonPositiveAmount,
		},
		{
			name: "bad side",
			req:  CreateVoucherRequest{Type: "SALES", Date: "2024-03-15", Entries: []EntryInput{{LedgerID: uuid.New(), Amount: 1, Side: "BOTH"}}},
			want: ErrInvalidSide,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.req.Validate(), tc.want)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "SLS-2403-0001", FormatNumber(TypeSales, date, 1))
	require.Equal(t, "PYT-2403-0042", FormatNumber(TypePayment, date, 42))
	require.Equal(t, "JNL-2512-0007", FormatNumber(TypeJournal, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 7))
}
