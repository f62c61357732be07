package searchlru_test

import (
	"fmt"
	"log"
	"slices"

	"github.com/hupe1980/searchlru"
)

// Example demonstrates LRU eviction and prefix search.
func Example() {
	c, err := searchlru.New[string, int](3)
	if err != nil {
		log.Fatal(err)
	}

	c.Put("cat", 1)
	c.Put("car", 2)
	c.Put("dog", 3)

	c.Get("cat")    // cat becomes most recently used
	c.Put("cow", 4) // evicts car

	matches := c.SearchByPrefix("c")
	slices.Sort(matches) // results are in index visit order
	fmt.Println(matches)

	for _, e := range c.EntriesByRecency() {
		fmt.Println(e.Key, e.Value)
	}
	// Output:
	// [cat cow]
	// cow 4
	// cat 1
	// dog 3
}

// ExampleCache_EntriesAscending shows entries in key order.
func ExampleCache_EntriesAscending() {
	c, err := searchlru.New[int, string](4)
	if err != nil {
		log.Fatal(err)
	}

	for _, k := range []int{30, 10, 20} {
		c.Put(k, fmt.Sprint("v", k))
	}

	for _, e := range c.EntriesAscending() {
		fmt.Println(e.Key, e.Value)
	}
	// Output:
	// 10 v10
	// 20 v20
	// 30 v30
}

// ExampleWithMetricsCollector demonstrates in-process metrics.
func ExampleWithMetricsCollector() {
	mc := &searchlru.BasicMetricsCollector{}
	c, err := searchlru.New[string, int](2, searchlru.WithMetricsCollector[string, int](mc))
	if err != nil {
		log.Fatal(err)
	}

	c.Put("a", 1)
	c.Get("a")
	c.Get("b")

	stats := mc.GetStats()
	fmt.Printf("hits=%d misses=%d rate=%.2f\n", stats.GetHits, stats.GetMisses, stats.GetHitRate())
	// Output: hits=1 misses=1 rate=0.50
}
