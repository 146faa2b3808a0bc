package sipbloom_test

import (
	"fmt"
	"sync"

	"github.com/jcalabro/sipbloom"
)

// This example demonstrates basic bloom filter usage for membership testing.
func Example() {
	// Create a filter for 10,000 items with 1% false positive rate
	f, err := sipbloom.NewForFalsePositiveRate(10_000, 0.01)
	if err != nil {
		panic(err)
	}

	// Add some items
	f.Set([]byte("apple"))
	f.Set([]byte("banana"))
	f.Set([]byte("cherry"))

	// Test membership
	fmt.Println("apple:", f.Check([]byte("apple")))   // true (added)
	fmt.Println("banana:", f.Check([]byte("banana"))) // true (added)
	fmt.Println("grape:", f.Check([]byte("grape")))   // false (not added)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example uses CheckAndSet to drop duplicates from a stream.
func Example_dedup() {
	f, err := sipbloom.NewForFalsePositiveRate(1_000, 0.001)
	if err != nil {
		panic(err)
	}

	for _, id := range []string{"evt-1", "evt-2", "evt-1", "evt-3", "evt-2"} {
		if f.CheckAndSetString(id) {
			fmt.Println("duplicate:", id)
			continue
		}
		fmt.Println("new:", id)
	}

	// Output:
	// new: evt-1
	// new: evt-2
	// duplicate: evt-1
	// new: evt-3
	// duplicate: evt-2
}

// This example sizes a filter by memory budget instead of target rate.
func ExampleNew() {
	// 1 KiB of bitmap for about 1,000 items
	f, err := sipbloom.New(1024, 1000)
	if err != nil {
		panic(err)
	}

	fmt.Println("bits:", f.NumberOfBits())
	fmt.Println("hash functions:", f.NumberOfHashFunctions())

	// Output:
	// bits: 8192
	// hash functions: 6
}

// This example shows how invalid parameters are reported.
func ExampleComputeBitmapSize() {
	size, err := sipbloom.ComputeBitmapSize(1000, 0.01)
	fmt.Println(size, err)

	_, err = sipbloom.ComputeBitmapSize(1000, 1)
	fmt.Println(err)

	// Output:
	// 1199 <nil>
	// sipbloom: false positive rate must be in (0, 1): got 1
}

// This example guards a Filter with a RWMutex for concurrent use.
func Example_concurrent() {
	f, err := sipbloom.NewForFalsePositiveRate(100_000, 0.01)
	if err != nil {
		panic(err)
	}

	var mu sync.RWMutex
	var wg sync.WaitGroup

	for i := range 4 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range 1000 {
				key := fmt.Sprintf("worker-%d-item-%d", id, j)
				mu.Lock()
				f.SetString(key)
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	mu.RLock()
	defer mu.RUnlock()
	fmt.Println("worker-0-item-0:", f.CheckString("worker-0-item-0"))
	fmt.Println("worker-3-item-999:", f.CheckString("worker-3-item-999"))

	// Output:
	// worker-0-item-0: true
	// worker-3-item-999: true
}
