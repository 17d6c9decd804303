package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewCheckoutMetricsWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newCheckoutMetricsWithRegisterer(reg)

	if m == nil {
		t.Fatal("newCheckoutMetricsWithRegisterer should not return nil")
	}
	if m.checkoutStarted == nil || m.checkoutCompleted == nil || m.checkoutFailed == nil {
		t.Error("outcome counters should not be nil")
	}
	if m.checkoutDuration == nil || m.stepDuration == nil {
		t.Error("duration histograms should not be nil")
	}
	if m.receiptsIssued == nil || m.cartEvictions == nil {
		t.Error("receipt/eviction counters should not be nil")
	}
	if m.activeCheckouts == nil {
		t.Error("activeCheckouts gauge should not be nil")
	}
}

func TestNewCheckoutMetrics_RepeatedRegistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newCheckoutMetricsWithRegisterer(reg)
	// Повторная регистрация не должна паниковать: берутся уже
	// зарегистрированные коллекторы.
	second := newCheckoutMetricsWithRegisterer(reg)

	first.RecordCheckoutStarted()
	second.RecordCheckoutStarted()

	metric := &dto.Metric{}
	if err := first.checkoutStarted.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected shared counter value 2.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordCheckoutLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newCheckoutMetricsWithRegisterer(reg)

	m.RecordCheckoutStarted()

	gauge := &dto.Metric{}
	if err := m.activeCheckouts.Write(gauge); err != nil {
		t.Fatalf("failed to write gauge: %v", err)
	}
	if gauge.Gauge.GetValue() != 1.0 {
		t.Errorf("expected 1 active checkout, got %f", gauge.Gauge.GetValue())
	}

	m.RecordCheckoutCompleted()

	gauge = &dto.Metric{}
	if err := m.activeCheckouts.Write(gauge); err != nil {
		t.Fatalf("failed to write gauge: %v", err)
	}
	if gauge.Gauge.GetValue() != 0.0 {
		t.Errorf("expected 0 active checkouts, got %f", gauge.Gauge.GetValue())
	}

	counter := &dto.Metric{}
	if err := m.checkoutCompleted.Write(counter); err != nil {
		t.Fatalf("failed to write counter: %v", err)
	}
	if counter.Counter.GetValue() != 1.0 {
		t.Errorf("expected completed counter 1.0, got %f", counter.Counter.GetValue())
	}
}

func TestRecordDurationsAndEvictions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newCheckoutMetricsWithRegisterer(reg)

	m.RecordCheckoutDuration(250 * time.Millisecond)
	m.RecordStepDuration("create_order", 50*time.Millisecond)
	m.RecordStepDuration("authorize_payment", 120*time.Millisecond)
	m.RecordReceiptIssued()
	m.RecordCartEvictions(2)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}

	if f, ok := byName["ordering_checkout_duration_seconds"]; !ok || f.GetMetric()[0].GetHistogram().GetSampleCount() != 1 {
		t.Error("checkout duration histogram not recorded")
	}
	if f, ok := byName["ordering_checkout_step_duration_seconds"]; !ok || len(f.GetMetric()) != 2 {
		t.Error("expected two step duration series")
	}
	if f, ok := byName["ordering_cart_evictions_total"]; !ok || f.GetMetric()[0].GetCounter().GetValue() != 2.0 {
		t.Error("cart evictions counter not recorded")
	}
}
