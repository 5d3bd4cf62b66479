package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/tsp"
)

var nodes tsp.ArrayIntFlags
var weightTypes tsp.ArrayStringFlags

func main() {
	flag.Var(&nodes, "n", "List of number of cities (repeatable)")
	flag.Var(&weightTypes, "w", "List of EDGE_WEIGHT_TYPEs - how the distance between nodes is calculated (repeatable)")
	name := flag.String("name", "zarychta", "Name for the instance")
	count := flag.Int("count", 10, "Number of instances per size")
	xTo := flag.Int("x", 10000, "Max value on the x-axis")
	yTo := flag.Int("y", 10000, "Max value on the y-axis")
	seed := flag.Int64("seed", 0, "Seed for the coordinate generator. 0 takes the current time")

	flag.Parse()

	if len(weightTypes) == 0 {
		weightTypes = append(weightTypes, tsp.EUC2D)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Printf("Generating with seed %d\n", *seed)

	for l := 0; l < *count; l++ {
		for i := 0; i < len(nodes); i++ {
			n := nodes[i]
			coordinatesArray := make([][]float64, n)
			for node := 0; node < n; node++ {
				x := rng.Intn(*xTo)
				y := rng.Intn(*yTo)
				coordinatesArray[node] = []float64{float64(x), float64(y)}
			}

			for j := 0; j < len(weightTypes); j++ {
				w := weightTypes[j]
				comment := fmt.Sprintf("%s instance Nr. %d with %d cities, %s weights (seed %d)", *name, l, n, w, *seed)
				instName := fmt.Sprintf("%s_%s_%d_%d", *name, w, n, l)
				tspInstance := tsp.Instance{Name: instName, Comment: comment, Type: "TSP", Dimension: n, NodeCoordinates: coordinatesArray, EdgeWeightType: w}

				jsonInst, err := json.MarshalIndent(tspInstance, "", "\t")
				if err != nil {
					log.Fatal(err)
				}

				jsonInst = []byte(tsp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
				err = ioutil.WriteFile(fmt.Sprintf("%s.json", instName), jsonInst, 0644)
				if err != nil {
					log.Fatal(err)
				}
			}
		}
	}
}
