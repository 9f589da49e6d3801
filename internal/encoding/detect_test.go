package encoding_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/commissions/internal/encoding"
)

func TestDecode_UTF8Passthrough(t *testing.T) {
	input := "carrier,customer,premium\nAcme,Zoë Brontë,1000\n"

	got, err := encoding.Decode([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestDecode_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("carrier,premium\n")...)

	got, err := encoding.Decode(input)
	require.NoError(t, err)
	assert.Equal(t, "carrier,premium\n", got)
}

func TestDecode_Latin1(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte("carrier,customer\nAcme,José Muñoz\n"))
	require.NoError(t, err)

	got, err := encoding.Decode(latin1)
	require.NoError(t, err)
	assert.Equal(t, "carrier,customer\nAcme,José Muñoz\n", got)
}

func TestDecode_Latin1AfterSniffWindow(t *testing.T) {
	text := "carrier,customer\n" + strings.Repeat("Acme,Jane Doe\n", 400) + "Acme,José Muñoz\n"

	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	require.Greater(t, len(latin1), 4096)

	got, err := encoding.Decode(latin1)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestDecode_UTF8RuneAcrossSniffWindow(t *testing.T) {
	text := strings.Repeat("a", 4095) + "é,carrier\n"

	got, err := encoding.Decode([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, text, got)
}
