package observability_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/observability"
	"github.com/aretw0/splitcalc/pkg/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_FromSession(t *testing.T) {
	m := observability.NewMetrics()
	s := session.New(session.WithLifecycleHooks(m.Hooks()))
	defer s.Close()

	s.SetBillText("120")
	s.SelectTip(domain.MustPercentage(0.1))
	s.SetSplit(3)
	s.SelectTip(domain.MustFixed(6))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Recomputes.WithLabelValues("none")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Recomputes.WithLabelValues("percentage")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Recomputes.WithLabelValues("fixed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.PartySize))

	var hist dto.Metric
	require.NoError(t, m.AmountPerPerson.Write(&hist))
	assert.Equal(t, uint64(5), hist.GetHistogram().GetSampleCount())
	assert.InDelta(t, 0+120+132+44+42, hist.GetHistogram().GetSampleSum(), 1e-9)

	s.Reset()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resets))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PartySize))
}

func TestMetrics_WriteText(t *testing.T) {
	m := observability.NewMetrics()
	m.Resets.Inc()

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	assert.Contains(t, buf.String(), "splitcalc_resets_total 1")
}
