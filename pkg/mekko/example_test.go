package mekko_test

import (
	"fmt"

	"github.com/matzehuels/mekko/pkg/mekko"
)

func ExampleAggregate() {
	records := []mekko.Record{
		{"Gender": "Female", "Treatment": "Yes"},
		{"Gender": "Male", "Treatment": "No"},
		{"Gender": "Female", "Treatment": "No"},
		{"Gender": "Male", "Treatment": ""},
	}

	table := mekko.Aggregate(records, mekko.AggregateOptions{
		Outer: mekko.Field("Gender"),
		Inner: mekko.Field("Treatment"),
	})

	fmt.Println("outer:", table.Outer)
	fmt.Println("inner:", table.Inner)
	fmt.Println("female total:", table.Total("Female"))
	fmt.Println("dropped:", table.Dropped)
	// Output:
	// outer: [Female Male]
	// inner: [Yes No]
	// female total: 2
	// dropped: 1
}

func ExampleBuild() {
	table := mekko.NewTable(
		[]string{"M", "F"},
		[]string{"Yes", "No"},
		map[string]map[string]int{
			"M": {"Yes": 15, "No": 45},
			"F": {"Yes": 30, "No": 10},
		},
	)

	layout := mekko.Build(table, 100, 100)
	for _, r := range layout.Rects {
		fmt.Printf("%s/%s x=%.0f y=%.0f w=%.0f h=%.0f\n", r.Outer, r.Inner, r.X, r.Y, r.Width, r.Height)
	}
	// Output:
	// M/Yes x=0 y=75 w=60 h=25
	// M/No x=0 y=0 w=60 h=75
	// F/Yes x=60 y=25 w=40 h=75
	// F/No x=60 y=0 w=40 h=25
}

func ExampleBuild_skipZero() {
	table := mekko.NewTable(
		[]string{"M"},
		[]string{"Yes", "No"},
		map[string]map[string]int{"M": {"No": 4}},
	)

	fmt.Println(len(mekko.Build(table, 100, 100).Rects))
	fmt.Println(len(mekko.Build(table, 100, 100, mekko.WithZeroPolicy(mekko.ZeroSkip)).Rects))
	// Output:
	// 2
	// 1
}
