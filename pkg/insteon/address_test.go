package insteon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress_AcceptedForms(t *testing.T) {
	tests := []struct {
		in   string
		want Address
	}{
		{"56:78:9a", "56789A"},
		{"56-78-9A", "56789A"},
		{"56.78.9f", "56789F"},
		{"56789f", "56789F"},
		{"56:78-9a", "56789A"},
		{"  0a:34:67 ", "0A3467"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAddress(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAddress_CaseIrrelevant(t *testing.T) {
	lower, err := ParseAddress("ab:cd:ef")
	require.NoError(t, err)
	upper, err := ParseAddress("AB:CD:EF")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
}

func TestParseAddress_Rejects(t *testing.T) {
	for _, in := range []string{"56:78:9", "56:78:9a1", "56:78:9g", "", "56::78:9a", "56/78/9a", "56:78:9a:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAddress(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDeviceFormat))
		})
	}
}

func TestParseAddress_ErrorNamesInput(t *testing.T) {
	_, err := ParseAddress("56:78:9g")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "56:78:9g")
}

func TestParseAddresses_Duplicates(t *testing.T) {
	addrs, err := ParseAddresses("56:78:9a,56:78:9a")
	require.NoError(t, err)
	assert.Equal(t, []Address{"56789A"}, addrs)

	addrs, err = ParseAddresses("56-78-9f,56-78-9a")
	require.NoError(t, err)
	assert.Len(t, addrs, 2)
}

func TestParseAddresses_EquivalentFormsCollapse(t *testing.T) {
	addrs, err := ParseAddresses("56:78:9a, 56-78-9A ,56789a")
	require.NoError(t, err)
	assert.Equal(t, []Address{"56789A"}, addrs)
}

func TestParseAddresses_SortedOrder(t *testing.T) {
	addrs, err := ParseAddresses("ff.00.01,0a:34:67,56789a")
	require.NoError(t, err)
	assert.Equal(t, []Address{"0A3467", "56789A", "FF0001"}, addrs)
}

func TestParseAddresses_FailFast(t *testing.T) {
	_, err := ParseAddresses("56:78:9a,nothex,56:78:9g")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDeviceFormat))
	assert.Contains(t, err.Error(), "nothex")
}

func TestAddress_Bytes(t *testing.T) {
	addr, err := ParseAddress("0a:34:67")
	require.NoError(t, err)

	assert.Equal(t, []byte{0x0A, 0x34, 0x67}, addr.Bytes())
	assert.Equal(t, addr, AddressFromBytes(addr.Bytes()))
	assert.Nil(t, Address("zz").Bytes())
}
