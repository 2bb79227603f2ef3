package reports

import (
	"math"
	"sort"
	"time"
)

// TaxLine is the slice of a sale or purchase the GST summary needs.
type TaxLine struct {
	Date         time.Time
	TaxableValue float64
	GSTAmount    float64
}

// GSTRateSummary accumulates one derived GST rate bucket. The tax splits
// 50/50 into CGST and SGST; IGST stays zero because only intra-state trade
// is modelled.
type GSTRateSummary struct {
	Rate         float64 `json:"rate"`
	TaxableValue float64 `json:"taxable_value"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
}

// GSTSection covers one direction of trade. InterState is structurally
// present but never populated.
type GSTSection struct {
	IntraState        []GSTRateSummary `json:"intra_state"`
	InterState        []GSTRateSummary `json:"inter_state"`
	TotalTaxableValue float64          `json:"total_taxable_value"`
	TotalCGST         float64          `json:"total_cgst"`
	TotalSGST         float64          `json:"total_sgst"`
	TotalIGST         float64          `json:"total_igst"`
}

// GSTReport summarises output tax on sales against input credit on purchases.
type GSTReport struct {
	From            string     `json:"from"`
	To              string     `json:"to"`
	Output          GSTSection `json:"output"`
	Input           GSTSection `json:"input"`
	TotalTaxPayable float64    `json:"total_tax_payable"`
	TotalTaxPaid    float64    `json:"total_tax_paid"`
	NetTaxLiability float64    `json:"net_tax_liability"`
}

// deriveRate recovers the GST percentage from the stored amounts, bucketed
// to two decimals.
func deriveRate(line TaxLine) float64 {
	if line.TaxableValue == 0 {
		return 0
	}
	return math.Round(line.GSTAmount/line.TaxableValue*100*100) / 100
}

func buildSection(lines []TaxLine, rng DateRange) GSTSection {
	section := GSTSection{
		IntraState: []GSTRateSummary{},
		InterState: []GSTRateSummary{},
	}
	buckets := make(map[float64]*GSTRateSummary)
	for _, line := range lines {
		if !rng.Contains(line.Date) {
			continue
		}
		rate := deriveRate(line)
		bucket, ok := buckets[rate]
		if !ok {
			bucket = &GSTRateSummary{Rate: rate}
			buckets[rate] = bucket
		}
		half := line.GSTAmount / 2
		bucket.TaxableValue += line.TaxableValue
		bucket.CGST += half
		bucket.SGST += half
		section.TotalTaxableValue += line.TaxableValue
		section.TotalCGST += half
		section.TotalSGST += half
	}
	rates := make([]float64, 0, len(buckets))
	for rate := range buckets {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)
	for _, rate := range rates {
		section.IntraState = append(section.IntraState, *buckets[rate])
	}
	return section
}

// BuildGSTReport folds in-range sales into the output section and in-range
// purchases into the input-credit section.
func BuildGSTReport(sales, purchases []TaxLine, rng DateRange) GSTReport {
	output := buildSection(sales, rng)
	input := buildSection(purchases, rng)
	report := GSTReport{
		From:            rng.From.Format("2006-01-02"),
		To:              rng.To.Format("2006-01-02"),
		Output:          output,
		Input:           input,
		TotalTaxPayable: output.TotalCGST + output.TotalSGST,
		TotalTaxPaid:    input.TotalCGST + input.TotalSGST,
	}
	report.NetTaxLiability = report.TotalTaxPayable - report.TotalTaxPaid
	return report
}
