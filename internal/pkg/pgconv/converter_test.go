//go:build unit

package pgconv

import (
	"testing"
	"time"

	"cowork-booking/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTimeRoundTripIsUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	in := time.Date(2030, 5, 1, 18, 0, 0, 0, tokyo)

	out := TimeFromPgtype(TimeToPgtype(in))

	assert.Equal(t, time.UTC, out.Location())
	assert.True(t, in.Equal(out))
	assert.True(t, TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
}

func TestNullableConversions(t *testing.T) {
	assert.False(t, StringPtrToPgtype(nil).Valid)
	assert.Nil(t, StringPtrFromPgtype(pgtype.Text{}))
	assert.Equal(t, "x", *StringPtrFromPgtype(StringPtrToPgtype(ptr.Of("x"))))

	id := uuid.New()
	assert.Equal(t, id, *UUIDPtrFromPgtype(UUIDPtrToPgtype(&id)))
	assert.Nil(t, UUIDPtrFromPgtype(UUIDPtrToPgtype(nil)))

	assert.False(t, Int64PtrToPgtype(nil).Valid)
	assert.Equal(t, int64(5), Int64PtrToPgtype(ptr.Of(int64(5))).Int64)
	assert.True(t, BoolPtrToPgtype(ptr.Of(true)).Bool)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.False(t, IsNoRows(assert.AnError))
}
