/*
	Basic Script that generates a churn-heavy log file to help test replay on large logs.
*/

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/0xRadioAc7iv/go-akv/core"
)

const (
	// Fixed universe
	totalKeys   = 100
	totalValues = 100

	// Per-cycle behavior
	keysPerCycleWrite  = 20
	keysPerCycleDelete = 10

	progressEvery = 500
)

func main() {
	path := flag.String("file", "./akv-gen.log", "Log file to write into")
	cycles := flag.Int("cycles", 5000, "Number of write/delete/rewrite cycles")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	start := time.Now()
	fmt.Println("Starting akv churn-heavy load generator")

	store, err := core.Open(*path)
	if err != nil {
		fmt.Println("open error:", err)
		os.Exit(1)
	}
	defer store.Close()

	keys := makeKeys(totalKeys)
	values := makeValues(totalValues)

	if err := churn(store, rand.New(rand.NewSource(*seed)), *cycles, keys, values); err != nil {
		fmt.Println(err)
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Println("stats error:", err)
		return
	}

	fmt.Printf("Load finished in %v: %d keys, %.2f MB log\n",
		time.Since(start), stats.Keys, float64(stats.LogSize)/core.OneMegabyte)
}

func churn(store *core.Store, rng *rand.Rand, cycles int, keys []string, values []string) error {
	for cycle := 1; cycle <= cycles; cycle++ {

		// ---- WRITE / OVERWRITE PHASE ----
		for i := 0; i < keysPerCycleWrite; i++ {
			key := keys[rng.Intn(len(keys))]
			val := values[rng.Intn(len(values))]

			if err := store.Insert([]byte(key), []byte(val)); err != nil {
				return fmt.Errorf("SET error: %w", err)
			}
		}

		// ---- DELETE PHASE ----
		for i := 0; i < keysPerCycleDelete; i++ {
			key := keys[rng.Intn(len(keys))]

			if err := store.Delete([]byte(key)); err != nil {
				return fmt.Errorf("DELETE error: %w", err)
			}
		}

		// ---- REWRITE PHASE (piles up superseded records) ----
		for i := 0; i < keysPerCycleWrite/2; i++ {
			key := keys[rng.Intn(len(keys))]
			val := values[rng.Intn(len(values))]

			if err := store.Insert([]byte(key), []byte(val)); err != nil {
				return fmt.Errorf("REWRITE error: %w", err)
			}
		}

		if cycle%progressEvery == 0 {
			fmt.Printf("completed %d cycles\n", cycle)
		}
	}

	return nil
}

func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = fmt.Sprintf("key-%03d", i)
	}
	return keys
}

func makeValues(n int) []string {
	values := make([]string, n)
	for i := 0; i < n; i++ {
		values[i] = fmt.Sprintf("value-%03d-xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", i)
	}
	return values
}
