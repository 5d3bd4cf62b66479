package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/tsp"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("Name,Status,Optimal,Time,Obj,Bound,Gap,Dimension,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if strings.Contains(fileName, ".json") {
			inst := tsp.Instance{}
			instStr, err := ioutil.ReadFile(fileName)
			if err != nil {
				log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
				return
			}
			err = json.Unmarshal(instStr, &inst)
			if err != nil {
				log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
				return
			}
			var sol tsp.Solution
			if inst.Solution != nil {
				sol = *inst.Solution
			}
			_, err = checkStoredTour(inst, sol)
			if err != nil {
				sol.Comment += fmt.Sprintf("ANALYZER: Error = %s", err.Error())
			}
			fmt.Printf("%s,%s,%t,%s,%.2f,%.2f,%.4f,%d,%s\n", inst.Name, sol.Status, sol.Optimal, sol.Time, sol.Obj, sol.Bound, sol.Gap, inst.Dimension, sol.Comment)
		}
	}

}

func checkStoredTour(inst tsp.Instance, sol tsp.Solution) (float64, error) {
	if len(sol.Tour) == 0 {
		return 0, nil
	}
	edgeDist, err := tsp.CalcArcDist(inst.NodeCoordinates, inst.EdgeWeightType)
	if err != nil {
		return -1, err
	}
	if err := tsp.ValidateTour(sol.Tour, inst.Dimension); err != nil {
		return -1, err
	}
	length := tsp.GetTourLength(sol.Tour, edgeDist)
	if math.Abs(length-sol.Obj) > 1e-6*(1+math.Abs(sol.Obj)) {
		return length, fmt.Errorf("Stored objective %f doesn't match the recomputed tour length %f!", sol.Obj, length)
	}
	return length, nil
}
