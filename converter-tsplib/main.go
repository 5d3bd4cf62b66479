package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"git.solver4all.com/azaryc2s/tsp"
)

func main() {
	var (
		err error
	)
	targetDir := os.Args[1]
	files, err := ioutil.ReadDir(targetDir)
	if err != nil {
		log.Fatal(err)
	}

FILES:
	for _, f := range files {
		if !strings.HasSuffix(f.Name(), ".tsp") {
			continue
		}
		fileName := targetDir + "/" + f.Name()
		fmt.Println(fileName)
		file, err := os.Open(fileName)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		fileName = strings.ReplaceAll(fileName, ".tsp", ".json")

		var name, comment, problemType, edgeWeightType string

		scanner := bufio.NewScanner(file)
		nodeCount := 0
		dimension := 0
		var coordinates [][]float64
		var metaData bool
		var nodeCoordSection bool
		metaData = true
		for scanner.Scan() {
			t := scanner.Text()
			if metaData {
				t = strings.Trim(t, " ")
				if t == "NODE_COORD_SECTION" {
					metaData = false
					nodeCoordSection = true
					continue
				}
				lineSplit := strings.SplitN(t, ":", 2)
				if len(lineSplit) < 2 {
					continue
				}
				lineSplit[0] = strings.Trim(lineSplit[0], " ")
				lineSplit[1] = strings.Trim(lineSplit[1], " ")

				if lineSplit[0] == "NAME" {
					name = lineSplit[1]
					continue
				}
				if lineSplit[0] == "COMMENT" {
					comment = lineSplit[1]
					continue
				}
				if lineSplit[0] == "TYPE" {
					problemType = lineSplit[1]
					continue
				}
				if lineSplit[0] == "DIMENSION" {
					dimension, err = strconv.Atoi(lineSplit[1])
					if err != nil {
						fmt.Printf("Couldn't parse the dimension! Skipping file: %s\n", err.Error())
						continue FILES
					}
					continue
				}
				if lineSplit[0] == "EDGE_WEIGHT_TYPE" {
					edgeWeightType = lineSplit[1]
					if edgeWeightType != tsp.EUC2D && edgeWeightType != tsp.CEIL2D {
						fmt.Printf("Format other then EUC_2D|CEIL_2D. Skipping for now...\n")
						continue FILES
					}
					continue
				}
			}
			if nodeCoordSection {
				if t == "EOF" || t == "" {
					nodeCoordSection = false
					continue
				}
				xyString := strings.Fields(t)

				x, err := strconv.ParseFloat(xyString[1], 64)
				if err != nil {
					fmt.Printf("Error parsing coordinate x!: %s", err.Error())
				}
				y, err := strconv.ParseFloat(xyString[2], 64)
				if err != nil {
					fmt.Printf("Error parsing coordinate y!: %s", err.Error())
				}
				xy := []float64{x, y}
				coordinates = append(coordinates, xy)
				nodeCount++
			}
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
		if dimension != 0 && dimension != nodeCount {
			fmt.Printf("DIMENSION %d doesn't match %d parsed coordinates. Skipping file\n", dimension, nodeCount)
			continue FILES
		}

		inst := tsp.Instance{Name: name, Comment: comment, Type: problemType, Dimension: nodeCount, EdgeWeightType: edgeWeightType, NodeCoordinates: coordinates}

		jsonInst, err := json.MarshalIndent(inst, "", "\t")
		if err != nil {
			log.Fatal(err)
		}

		jsonInst = []byte(tsp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
		err = ioutil.WriteFile(fileName, jsonInst, 0644)
		if err != nil {
			log.Fatal(err)
		}
	}
}
