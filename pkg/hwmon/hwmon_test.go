package hwmon_test

import (
	"testing"

	"krakenmon/pkg/hwmon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	type testCase struct {
		name    string
		in      string
		want    hwmon.SensorKind
		wantErr bool
	}

	cases := []testCase{
		{name: "temp", in: "temp", want: hwmon.Temperature},
		{name: "temperature alias", in: "temperature", want: hwmon.Temperature},
		{name: "fan", in: "fan", want: hwmon.Fan},
		{name: "unknown", in: "pressure", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := hwmon.ParseKind(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, hwmon.ErrUnsupportedChannel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, kind := range []hwmon.SensorKind{hwmon.Temperature, hwmon.Fan} {
		got, err := hwmon.ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "35.0°C", hwmon.FormatValue(hwmon.Temperature, 35000))
	assert.Equal(t, "35.5°C", hwmon.FormatValue(hwmon.Temperature, 35500))
	assert.Equal(t, "0.0°C", hwmon.FormatValue(hwmon.Temperature, 0))
	assert.Equal(t, "3200 RPM", hwmon.FormatValue(hwmon.Fan, 3200))
}

type nullDevice struct{ hwmon.Device }

func TestRegistry(t *testing.T) {
	// Test-only ids, outside any real vendor space we register.
	hwmon.Register(0xffff, 0x0001, hwmon.Registration{
		Name: "testchip",
		New:  func() hwmon.Device { return nullDevice{} },
	})

	reg, ok := hwmon.Lookup(0xffff, 0x0001)
	require.True(t, ok)
	assert.Equal(t, "testchip", reg.Name)
	require.NotNil(t, reg.New)

	_, ok = hwmon.Lookup(0xffff, 0x0002)
	assert.False(t, ok)

	assert.Contains(t, hwmon.SupportedNames(), "testchip")
}
