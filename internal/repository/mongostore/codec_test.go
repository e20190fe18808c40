package mongostore

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"cloudstay/internal/model"
)

func encode(t *testing.T, v any) bson.Raw {
	t.Helper()
	buf := new(bytes.Buffer)
	vw, err := bsonrw.NewBSONValueWriter(buf)
	require.NoError(t, err)
	enc, err := bson.NewEncoder(vw)
	require.NoError(t, err)
	require.NoError(t, enc.SetRegistry(Registry()))
	require.NoError(t, enc.Encode(v))
	return buf.Bytes()
}

func decode(t *testing.T, raw bson.Raw, out any) {
	t.Helper()
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(raw))
	require.NoError(t, err)
	require.NoError(t, dec.SetRegistry(Registry()))
	require.NoError(t, dec.Decode(out))
}

func TestDecimal_WrittenAsDecimal128(t *testing.T) {
	raw := encode(t, model.Sale{Date: time.Unix(0, 0).UTC(), Price: decimal.RequireFromString("80.50")})

	assert.Equal(t, bsontype.Decimal128, raw.Lookup("price").Type)

	var out model.Sale
	decode(t, raw, &out)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("80.5")))
}

func TestDecimal_ReadsLegacyNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"double", 12.5, "12.5"},
		{"int32", int32(120), "120"},
		{"int64", int64(99), "99"},
		{"string", "45.10", "45.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"price": tt.value})
			require.NoError(t, err)

			var out model.Sale
			decode(t, raw, &out)
			assert.True(t, out.Price.Equal(decimal.RequireFromString(tt.want)), out.Price.String())
		})
	}
}

func TestRoomDoc_InlinesModelFields(t *testing.T) {
	raw := encode(t, roomDoc{Room: model.Room{
		Title: "Cabin",
		Host:  model.Party{Email: "host@example.com"},
		Price: decimal.NewFromInt(100),
	}})

	assert.Equal(t, "Cabin", raw.Lookup("title").StringValue())
	assert.Equal(t, "host@example.com", raw.Lookup("host", "email").StringValue())
	_, err := raw.LookupErr("_id")
	assert.Error(t, err)
}
