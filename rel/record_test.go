package rel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	require := require.New(t)

	record, err := ParseRecord("{name: string, amount: int64, active: bool}")
	require.NoError(err)
	require.Equal([]string{"name", "amount", "active"}, record.Names())
	require.Equal(Text, record[0].Type)
	require.Equal(Int64, record[1].Type)
	require.Equal(Boolean, record[2].Type)
}

func TestParseRecordUnknownType(t *testing.T) {
	require := require.New(t)

	_, err := ParseRecord("{payload: blob}")
	require.Error(err)
	require.True(ErrTypeNotSupported.Is(err))
}

func TestParseRecordMalformed(t *testing.T) {
	require := require.New(t)

	_, err := ParseRecord("{name: string")
	require.Error(err)
}

func TestRecordTypeEquals(t *testing.T) {
	require := require.New(t)

	a := MustParseRecord("{a: int64, b: string}")
	b := MustParseRecord("{a: int64, b: string}")
	c := MustParseRecord("{b: string, a: int64}")

	require.True(a.Equals(b))
	require.False(a.Equals(c))
	require.False(a.Equals(a[:1]))
}

func TestRecordTypeRestrict(t *testing.T) {
	require := require.New(t)

	record := MustParseRecord("{a: int64, b: string, c: bool}")

	restricted, err := record.Restrict([]string{"c", "a"})
	require.NoError(err)
	require.Equal([]string{"c", "a"}, restricted.Names())

	_, err = record.Restrict([]string{"z"})
	require.Error(err)
	require.True(ErrColumnNotFound.Is(err))
}

func TestRecordTypeRename(t *testing.T) {
	require := require.New(t)

	record := MustParseRecord("{a: int64, b: string}")

	renamed, err := record.Rename(map[string]string{"b": "label"})
	require.NoError(err)
	require.Equal([]string{"a", "label"}, renamed.Names())
	require.Equal(Text, renamed[1].Type)

	_, err = record.Rename(map[string]string{"z": "x"})
	require.True(ErrColumnNotFound.Is(err))

	_, err = record.Rename(map[string]string{"b": "a"})
	require.True(ErrDuplicateColumn.Is(err))
}

func TestPromoteNumeric(t *testing.T) {
	require := require.New(t)

	typ, err := PromoteNumeric(Int64, Int64)
	require.NoError(err)
	require.Equal(Int64, typ)

	typ, err = PromoteNumeric(Int64, Float64)
	require.NoError(err)
	require.Equal(Float64, typ)

	_, err = PromoteNumeric(Int64, Text)
	require.True(ErrInvalidOperandType.Is(err))
}
