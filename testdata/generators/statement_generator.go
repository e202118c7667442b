package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// StatementGenerator generates synthetic bank statement CSV files for
// testing the analysis pipeline at different sizes and shapes.
type StatementGenerator struct {
	Count     int
	StartDate time.Time
	EndDate   time.Time
	Format    string // split (credit/debit columns) or signed (single amount column)
	Seed      int64
}

// narration pools keyed by the kind of spend they imitate. Amount ranges
// roughly match what those purchases cost so fallback classification
// behaves like it would on a real export.
type narrationPool struct {
	narrations []string
	minAmount  int
	maxAmount  int
	credit     bool
}

var pools = []narrationPool{
	{[]string{"NEFT-STONEWAIN PAY-SALARY-%06d"}, 40000, 90000, true},
	{[]string{"UPI-ZOMATO-%08d-OKICICI", "UPI-SWIGGY-%08d", "HALDIRAM RESTAURANT %04d"}, 150, 1200, false},
	{[]string{"UPI-BLINKIT-%08d", "SMART BAZAAR POS %06d", "UPI-VEGETABLE VENDOR-%06d"}, 50, 2500, false},
	{[]string{"IRCTC TICKET %08d", "FUEL STATION %04d", "FASTAG TOLL %06d"}, 100, 5000, false},
	{[]string{"ATW-%06d-CASH", "ATM WDL %08d"}, 500, 10000, false},
	{[]string{"AIRTEL RECHARGE %08d", "JIO FIBER %06d"}, 199, 1499, false},
	{[]string{"MYNTRA ORDER %08d", "SHOE STORE POS %04d"}, 400, 4000, false},
	{[]string{"PPF DEPOSIT %06d", "FD THROUGH MOBILE %06d"}, 5000, 50000, false},
	{[]string{"POS %08d MISC", "CHQ DEP %06d"}, 20, 199, false},
}

func main() {
	var (
		output    = flag.String("output", "generated_statement.csv", "Output CSV file path")
		count     = flag.Int("count", 1000, "Number of transactions to generate")
		startDate = flag.String("start-date", "2024-01-01", "Start date (YYYY-MM-DD)")
		endDate   = flag.String("end-date", "2024-12-31", "End date (YYYY-MM-DD)")
		format    = flag.String("format", "split", "Output format: split (credit/debit) or signed (amount)")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "Random seed for reproducible generation")
	)
	flag.Parse()

	start, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		log.Fatalf("Invalid start date: %v", err)
	}
	end, err := time.Parse("2006-01-02", *endDate)
	if err != nil {
		log.Fatalf("Invalid end date: %v", err)
	}
	if *format != "split" && *format != "signed" {
		log.Fatalf("Invalid format %q: use split or signed", *format)
	}

	generator := &StatementGenerator{
		Count:     *count,
		StartDate: start,
		EndDate:   end,
		Format:    *format,
		Seed:      *seed,
	}

	if err := generator.Generate(*output); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	fmt.Printf("Generated %d transactions in %s (%s format, seed %d)\n",
		*count, *output, *format, *seed)
}

// Generate writes the statement file
func (g *StatementGenerator) Generate(outputPath string) error {
	rng := rand.New(rand.NewSource(g.Seed))

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if g.Format == "split" {
		if err := writer.Write([]string{"date", "narration", "debit", "credit"}); err != nil {
			return err
		}
	} else {
		if err := writer.Write([]string{"date", "narration", "amount"}); err != nil {
			return err
		}
	}

	span := int(g.EndDate.Sub(g.StartDate).Hours() / 24)
	if span < 1 {
		span = 1
	}

	for i := 0; i < g.Count; i++ {
		pool := pools[rng.Intn(len(pools))]
		narration := fmt.Sprintf(pool.narrations[rng.Intn(len(pool.narrations))], rng.Intn(100000000))
		date := g.StartDate.AddDate(0, 0, rng.Intn(span)).Format("02/01/2006")
		amount := decimal.NewFromInt(int64(pool.minAmount + rng.Intn(pool.maxAmount-pool.minAmount+1)))

		var record []string
		if g.Format == "split" {
			if pool.credit {
				record = []string{date, narration, "", amount.String()}
			} else {
				record = []string{date, narration, amount.String(), ""}
			}
		} else {
			if pool.credit {
				record = []string{date, narration, amount.String()}
			} else {
				record = []string{date, narration, amount.Neg().String()}
			}
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
