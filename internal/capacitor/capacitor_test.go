package capacitor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, 1e-6, p.Capacitance)
	assert.Equal(t, 100.0, p.Amplitude)
	assert.Equal(t, 2.0, p.Rate)
	assert.Equal(t, 5.0, p.Duration)
	assert.NoError(t, p.Validate())
}

func TestVoltage(t *testing.T) {
	p := Default()

	assert.Equal(t, 100.0, p.Voltage(0))
	assert.InDelta(t, 100*math.Exp(-2), p.Voltage(1), 1e-12)
	assert.InDelta(t, 100*math.Exp(-10), p.Voltage(5), 1e-15)
	assert.Equal(t, p.Voltage(0.3), p.Integrand()(0.3))
}

func TestAnalyticalCharge(t *testing.T) {
	p := Default()

	want := 1e-6 * 100 * (1 - math.Exp(-2*5)) / 2
	assert.Equal(t, want, p.AnalyticalCharge())
	assert.InDelta(t, 4.99977300e-5, p.AnalyticalCharge(), 1e-13)
}

func TestSimpsonCharge(t *testing.T) {
	p := Default()

	q, err := p.SimpsonCharge(30)
	require.NoError(t, err)
	assert.InDelta(t, 4.99954600e-5, q, 1e-6)
	assert.InDelta(t, p.AnalyticalCharge(), q, 1e-8)
}

func TestSimpsonCharge_OddSubdivisions(t *testing.T) {
	_, err := Default().SimpsonCharge(7)

	require.Error(t, err)
	assert.True(t, mdwerrors.HasCode(err, mdwerrors.CodeInvalidArgument))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Problem)
	}{
		{"zero capacitance", func(p *Problem) { p.Capacitance = 0 }},
		{"negative rate", func(p *Problem) { p.Rate = -1 }},
		{"zero duration", func(p *Problem) { p.Duration = 0 }},
		{"nan amplitude", func(p *Problem) { p.Amplitude = math.NaN() }},
		{"infinite duration", func(p *Problem) { p.Duration = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)

			err := p.Validate()
			require.Error(t, err)
			assert.True(t, mdwerrors.HasCode(err, mdwerrors.CodeInvalidArgument))
		})
	}
}

func TestValidate_NegativeAmplitudeAllowed(t *testing.T) {
	p := Default()
	p.Amplitude = -100

	assert.NoError(t, p.Validate())
	assert.Less(t, p.AnalyticalCharge(), 0.0)
}
