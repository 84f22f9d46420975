package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazraa/farmbook/internal/domain/models"
)

// stubKV is an in-memory medium whose writes can be made to fail.
type stubKV struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newStubKV() *stubKV {
	return &stubKV{data: map[string][]byte{}}
}

func (s *stubKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *stubKV) Close() error { return nil }

func newTestStore(t *testing.T) (*Store, *stubKV) {
	t.Helper()
	medium := newStubKV()
	return Load(context.Background(), medium, nil), medium
}

func animal(tag string) models.Animal {
	return models.Animal{Tag: tag, Status: models.StatusMilking}
}

func TestAddAssignsGrowingIDs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddAnimal(ctx, animal("101"))
	require.NoError(t, err)
	second, err := s.AddAnimal(ctx, animal("102"))
	require.NoError(t, err)

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	snap := s.Snapshot()
	require.Len(t, snap.Animals, 2)
	assert.Equal(t, "101", snap.Animals[0].Tag, "insertion order is the canonical order")
}

func TestAddRejectsInvalidRecord(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddAnimal(context.Background(), models.Animal{})

	var validationErr models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, s.Snapshot().Animals, "nothing mutated on rejection")
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UpdateAnimal(context.Background(), models.Animal{ID: 42, Tag: "101"})

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.ID)
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	stored, err := s.AddAnimal(ctx, animal("101"))
	require.NoError(t, err)

	stored.Name = "Baraka"
	stored.Status = models.StatusDry
	updated, err := s.UpdateAnimal(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDry, updated.Status)

	snap := s.Snapshot()
	require.Len(t, snap.Animals, 1)
	assert.Equal(t, "Baraka", snap.Animals[0].Name)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	stored, err := s.AddAnimal(ctx, animal("101"))
	require.NoError(t, err)

	require.NoError(t, s.RemoveAnimal(ctx, stored.ID))
	require.NoError(t, s.RemoveAnimal(ctx, stored.ID), "second removal is a no-op")
	require.NoError(t, s.RemoveAnimal(ctx, 9999))
	assert.Empty(t, s.Snapshot().Animals)
}

func TestFeedPurchaseCostDerivedAtWriteTime(t *testing.T) {
	s, _ := newTestStore(t)

	stored, err := s.AddFeedPurchase(context.Background(), models.FeedPurchase{
		FeedType:  "bran",
		Quantity:  decimal.NewFromInt(10),
		Unit:      "sack",
		UnitPrice: decimal.NewFromInt(50),
		Date:      models.NewDate(2024, time.June, 1),
	})
	require.NoError(t, err)
	assert.True(t, stored.TotalCost.Equal(decimal.NewFromInt(500)), "totalCost = %s", stored.TotalCost)
}

func TestFlushFailureKeepsMutationAndReportsStale(t *testing.T) {
	s, medium := newTestStore(t)
	medium.setErr = errors.New("disk full")

	stored, err := s.AddAnimal(context.Background(), animal("101"))

	require.ErrorIs(t, err, ErrStalePersistence)
	assert.Positive(t, stored.ID, "record is returned with its id")
	assert.Len(t, s.Snapshot().Animals, 1, "mutation stands in memory")
}

func TestLoadSurvivesUnreadableMedium(t *testing.T) {
	medium := newStubKV()
	medium.getErr = errors.New("medium gone")

	s := Load(context.Background(), medium, nil)

	snap := s.Snapshot()
	assert.NotNil(t, snap.Animals)
	assert.Empty(t, snap.Animals)
}

func TestLoadSurvivesCorruptCollection(t *testing.T) {
	medium := newStubKV()
	medium.data["animals"] = []byte("{not json")
	medium.data["customers"] = []byte(`[{"id":3,"name":"Amina"}]`)

	s := Load(context.Background(), medium, nil)

	snap := s.Snapshot()
	assert.Empty(t, snap.Animals, "corrupt collection degrades to empty")
	require.Len(t, snap.Customers, 1, "healthy collections still load")
	assert.Equal(t, "Amina", snap.Customers[0].Name)
}

func TestLoadResumesIDSequenceAboveStoredIDs(t *testing.T) {
	medium := newStubKV()
	medium.data["customers"] = []byte(`[{"id":7,"name":"Amina"}]`)
	medium.data["sales"] = []byte(`[{"id":12,"customerId":7,"quantity":1,"unitPrice":1,"total":1,"amountPaid":1,"debt":0,"date":"2024-06-01"}]`)

	s := Load(context.Background(), medium, nil)

	stored, err := s.AddCustomer(context.Background(), models.Customer{Name: "Karim"})
	require.NoError(t, err)
	assert.Greater(t, stored.ID, int64(12))
}

func TestExportImportRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddAnimal(ctx, animal("101"))
	require.NoError(t, err)
	cust, err := s.AddCustomer(ctx, models.Customer{Name: "Amina", Phone: "0550"})
	require.NoError(t, err)
	_, err = s.AddSale(ctx, models.NewSale(cust.ID, decimal.NewFromInt(20), decimal.NewFromInt(500), nil, models.NewDate(2024, time.June, 1)))
	require.NoError(t, err)
	_, err = s.AddMilkEntry(ctx, models.MilkEntry{Amount: decimal.NewFromInt(12), Session: models.SessionMorning, Date: models.NewDate(2024, time.June, 1)})
	require.NoError(t, err)

	exported := s.Export()

	other, _ := newTestStore(t)
	require.NoError(t, other.Import(ctx, exported))

	assert.Equal(t, exported, other.Export())
}

func TestImportReplacesExistingState(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddAnimal(ctx, animal("101"))
	require.NoError(t, err)

	require.NoError(t, s.Import(ctx, models.EmptySnapshot()))
	assert.Empty(t, s.Snapshot().Animals)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddAnimal(ctx, animal("101"))
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Animals[0].Tag = "tampered"

	assert.Equal(t, "101", s.Snapshot().Animals[0].Tag)
}
