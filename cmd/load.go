package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mkort/geosbridge/convert"
	"github.com/mkort/geosbridge/features"
	"github.com/mkort/geosbridge/geos"
	"github.com/mkort/geosbridge/wkbstore"
)

var datasetName string
var description string
var numWorkers int
var byteOrder string
var outputDims int

var loadCmd = &cobra.Command{
	Use:   "load [IN.shp] [OUT.db]",
	Short: "Convert shapefile geometries into GEOS and store them as WKB",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errors.New("shapefile and database filenames are required")
		}
		if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input file '%s' does not exist", args[0])
		}
		outDir, _ := path.Split(args[1])
		if outDir != "" {
			if _, err := os.Stat(outDir); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("output directory '%s' does not exist", outDir)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if numWorkers < 1 {
			numWorkers = 1
		}
		if _, err := parseByteOrder(byteOrder); err != nil {
			return err
		}
		if outputDims != 2 && outputDims != 3 {
			return errors.New("dims must be 2 or 3")
		}

		return load(args[0], args[1])
	},
	SilenceUsage: true,
}

func init() {
	loadCmd.Flags().StringVarP(&datasetName, "name", "n", "", "dataset name")
	loadCmd.Flags().StringVar(&description, "description", "", "dataset description")
	loadCmd.Flags().IntVarP(&numWorkers, "workers", "w", 4, "number of conversion workers")
	loadCmd.Flags().StringVar(&byteOrder, "byteorder", "little", "WKB byte order: little|big")
	loadCmd.Flags().IntVar(&outputDims, "dims", 2, "WKB output dimensions")
}

func parseByteOrder(s string) (geos.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "little", "ndr":
		return geos.LittleEndian, nil
	case "big", "xdr":
		return geos.BigEndian, nil
	}
	return 0, fmt.Errorf("invalid byte order '%s'", s)
}

// configureContext applies the session-scoped output settings to a
// freshly created worker context.
func configureContext(ctx *geos.Context) {
	order, _ := parseByteOrder(byteOrder)
	ctx.SetWKBByteOrder(order)
	ctx.SetWKBOutputDims(outputDims)
}

func produce(size int, queue chan<- int) {
	defer close(queue)

	bar := progressbar.NewOptions(size, progressbar.OptionSetWidth(25), progressbar.OptionSetDescription("features"))
	for i := 0; i < size; i++ {
		queue <- i
		bar.Add(1)
	}
	bar.Clear()
}

func load(infilename string, outfilename string) error {
	if datasetName == "" {
		datasetName = strings.TrimSuffix(path.Base(infilename), filepath.Ext(infilename))
	}

	fmt.Printf("Reading features from %v\n", infilename)
	table, err := features.ReadShapefile(infilename)
	if err != nil {
		return err
	}

	db, err := wkbstore.NewWriter(outfilename, numWorkers)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.WriteMetadata(datasetName, description, table.Size(), table.Bounds()); err != nil {
		return err
	}

	queue := make(chan int)
	var wg sync.WaitGroup

	go produce(table.Size(), queue)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// GEOS contexts are not safe for concurrent use, so each
			// worker owns one for its lifetime
			ctx, err := geos.NewContext()
			if err != nil {
				panic(err)
			}
			defer ctx.Finish()
			configureContext(ctx)

			con, err := db.GetConnection()
			if err != nil {
				panic(err)
			}
			defer db.CloseConnection(con)

			for i := range queue {
				g, err := convert.Geometry(ctx, table.Geom(i))
				if err != nil {
					panic(fmt.Errorf("feature %d: %v", table.ID(i), err))
				}

				if valid, err := ctx.IsValid(g); err == nil && !valid {
					if notice, ok := ctx.TakeLastNotice(); ok {
						fmt.Printf("feature %d is not valid: %v\n", table.ID(i), notice)
					} else {
						fmt.Printf("feature %d is not valid\n", table.ID(i))
					}
				}

				wkb, err := ctx.GeomToWKB(g)
				ctx.Destroy(g)
				if err != nil {
					panic(fmt.Errorf("feature %d: %v", table.ID(i), err))
				}

				if err := wkbstore.WriteFeature(con, table.ID(i), wkb); err != nil {
					panic(err)
				}
			}
		}()
	}

	wg.Wait()

	fmt.Printf("Wrote %d features to %v\n", table.Size(), outfilename)

	return nil
}
