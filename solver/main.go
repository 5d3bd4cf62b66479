/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */
/* Copyright 2021, Gurobi Optimization, LLC */

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/tsp"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

var (
	sol   tsp.Solution
	pInst tsp.Instance

	inputF    *string
	outputF   *string
	timeLimit *float64
	gap       *float64
	noWarm    *bool
	writeLP   *bool
)

func main() {
	inputF = flag.String("input", "input.json", "Path to the input instance")
	outputF = flag.String("output", "", "Path to the output file. By default the input file will be overwritten adding the solution")
	timeLimit = flag.Float64("time", 0, "Time limit in seconds. 0 means no limit")
	gap = flag.Float64("gap", 0, "Relative MIP-gap at which the solve may stop early")
	noWarm = flag.Bool("nowarm", false, "Skip the nearest-neighbor warm start")
	writeLP = flag.Bool("lp", false, "Write the built model next to the input in LP format")

	flag.Parse()

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sol = tsp.Solution{Comment: "", System: tsp.SysInfo{Platform: hostStat.Platform, CPU: cpuStat[0].ModelName, RAM: fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}}

	instStr, err := ioutil.ReadFile(*inputF)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	err = json.Unmarshal(instStr, &pInst)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	if pInst.Dimension != len(pInst.NodeCoordinates) {
		log.Printf("At %s: dimension %d doesn't match %d coordinates\n", *inputF, pInst.Dimension, len(pInst.NodeCoordinates))
		return
	}
	pInst.Solution = &sol

	edgeDist, err := tsp.CalcArcDist(pInst.NodeCoordinates, pInst.EdgeWeightType)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	formulation, err := tsp.NewFormulation(edgeDist)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	params := tsp.SolveParams{TimeLimit: *timeLimit, MIPGap: *gap}
	if !*noWarm {
		warmTour, err := tsp.NearestNeighborTour(edgeDist, 0)
		if err != nil {
			log.Printf("At %s: %s\n", *inputF, err.Error())
			return
		}
		log.Printf("Warm-starting with a greedy tour of length %.2f\n", tsp.GetTourLength(warmTour, edgeDist))
		params.WarmStart = warmTour
	}
	if *writeLP {
		params.ModelFile = strings.ReplaceAll(*inputF, ".json", ".lp")
	}

	startTime := time.Now()
	res, err := tsp.SolveTSP(formulation, params)
	sol.Time = time.Since(startTime).String()
	log.Printf("\n---OPTIMIZATION DONE---\n\t Generating and writing result now\n\n")
	defer writeSolution()

	sol.Status = res.Status.String()
	if err != nil {
		if errors.Is(err, tsp.ErrInvalidSolution) {
			sol.Comment += fmt.Sprintf("The returned arcs don't form a single tour: %s. ", err.Error())
		}
		if errors.Is(err, tsp.ErrInfeasible) {
			sol.Comment += "The model was reported infeasible - this shouldn't happen for a complete arc set. "
		}
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	switch res.Status {
	case tsp.StatusOptimal:
		sol.Optimal = true
	case tsp.StatusSuboptimal:
		sol.Comment += "Stopped before proving optimality. "
	case tsp.StatusNoSolution:
		sol.Comment += "Time limit reached without any solution. "
		return
	}

	sol.Obj = res.Obj
	sol.Bound = res.Bound
	sol.Gap = res.Gap
	sol.Tour = res.Tour
	fmt.Printf("Found a tour with %d cities and length %.2f: %v \n", len(res.Tour), res.Obj, res.Tour)
}

func writeSolution() {
	jsonInst, err := json.MarshalIndent(pInst, "", "\t")
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	jsonInst = []byte(tsp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	var fileName string
	if *outputF == "" {
		fileName = *inputF //overwrite the input file
	} else {
		fileName = *outputF
	}
	err = ioutil.WriteFile(fileName, jsonInst, 0644)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
}
