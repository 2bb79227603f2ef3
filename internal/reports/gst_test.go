package reports

import (
	"testing"
	"time"

	_ "github.com/meridian-erp/meridian-erp/testing"
)

func TestBuildGSTReport(t *testing.T) {
	rng := DateRange{
		From: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
	}
	sales := []TaxLine{
		{Date: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), TaxableValue: 1000, GSTAmount: 180},
		{Date: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), TaxableValue: 500, GSTAmount: 90},
		// Out of range.
		{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), TaxableValue: 9999, GSTAmount: 1799},
	}
	purchases := []TaxLine{
		{Date: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), TaxableValue: 500, GSTAmount: 25},
	}

	report := BuildGSTReport(sales, purchases, rng)

	if len(report.Output.IntraState) != 1 {
		t.Fatalf("expected one output rate bucket, got %d", len(report.Output.IntraState))
	}
	bucket := report.Output.IntraState[0]
	if bucket.Rate != 18 {
		t.Fatalf("expected derived rate 18 got %v", bucket.Rate)
	}
	if bucket.TaxableValue != 1500 {
		t.Fatalf("expected taxable 1500 got %v", bucket.TaxableValue)
	}
	if bucket.CGST != 135 || bucket.SGST != 135 {
		t.Fatalf("expected 135/135 CGST/SGST got %v/%v", bucket.CGST, bucket.SGST)
	}
	if bucket.IGST != 0 {
		t.Fatalf("IGST must stay zero for intra-state trade, got %v", bucket.IGST)
	}

	if len(report.Input.IntraState) != 1 || report.Input.IntraState[0].Rate != 5 {
		t.Fatalf("unexpected input buckets: %+v", report.Input.IntraState)
	}

	if report.TotalTaxPayable != 270 {
		t.Fatalf("expected tax payable 270 got %v", report.TotalTaxPayable)
	}
	if report.TotalTaxPaid != 25 {
		t.Fatalf("expected tax paid 25 got %v", report.TotalTaxPaid)
	}
	if report.NetTaxLiability != 245 {
		t.Fatalf("expected net liability 245 got %v", report.NetTaxLiability)
	}
}

func TestDeriveRateZeroTaxable(t *testing.T) {
	if rate := deriveRate(TaxLine{TaxableValue: 0, GSTAmount: 50}); rate != 0 {
		t.Fatalf("expected rate 0 for zero taxable value, got %v", rate)
	}
}
