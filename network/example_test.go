package network_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/polysched/builder"
	"github.com/katalvlaran/polysched/network"
)

func ExamplePlanner_OptimizedSchedule() {
	rel, names := builder.Sample()
	p, err := network.New(rel, names)
	if err != nil {
		panic(err)
	}
	s, err := p.OptimizedSchedule()
	if err != nil {
		panic(err)
	}

	for i, d := range s.All() {
		pairs := make([]string, 0, len(d))
		for _, m := range d {
			pairs = append(pairs, s.Name(m.A)+"+"+s.Name(m.B))
		}
		fmt.Printf("day %d: %s\n", i+1, strings.Join(pairs, ", "))
	}
	st := p.Stats(s)
	fmt.Printf("weight=%d lower=%d limit=%d performance=%d%%\n",
		st.Weight, st.MinimumRun, st.ApproximationLimit, st.Performance)

	// Output:
	// day 1: Daisy+Grace
	// day 2: Claire+Daisy, Felix+Grace
	// day 3: Alice+Daisy, Belle+Claire, Emily+Felix
	// day 4: Alice+Belle, Daisy+Emily
	// day 5: Alice+Felix, Emily+Holly
	// weight=400 lower=120 limit=1080 performance=333%
}

func ExampleMinimumRun() {
	rel, _ := builder.Sample()
	fmt.Println(network.MinimumRun(rel), network.ApproximationLimit(rel), network.LayerCount(rel))
	// Output: 120 1080 0
}
