package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mkort/geosbridge/features"
	"github.com/mkort/geosbridge/geos"
	"github.com/mkort/geosbridge/wkbstore"
)

var geomColumn string
var idColumn string

var repackCmd = &cobra.Command{
	Use:   "repack [IN.feather] [OUT.db]",
	Short: "Re-encode a feather WKB column through GEOS into a WKB store",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errors.New("feather and database filenames are required")
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

		return repack(args[0], args[1])
	},
	SilenceUsage: true,
}

func init() {
	repackCmd.Flags().StringVarP(&datasetName, "name", "n", "", "dataset name")
	repackCmd.Flags().StringVar(&description, "description", "", "dataset description")
	repackCmd.Flags().IntVarP(&numWorkers, "workers", "w", 4, "number of re-encoding workers")
	repackCmd.Flags().StringVar(&byteOrder, "byteorder", "little", "WKB byte order: little|big")
	repackCmd.Flags().IntVar(&outputDims, "dims", 2, "WKB output dimensions")
	repackCmd.Flags().StringVar(&geomColumn, "geometry", "geometry", "binary WKB column name")
	repackCmd.Flags().StringVar(&idColumn, "id", "", "integer column name to use as feature ID")
}

func repack(infilename string, outfilename string) error {
	if datasetName == "" {
		datasetName = strings.TrimSuffix(path.Base(infilename), filepath.Ext(infilename))
	}

	fmt.Printf("Reading features from %v\n", infilename)
	table, err := features.ReadFeather(infilename, geomColumn, idColumn)
	if err != nil {
		return err
	}

	db, err := wkbstore.NewWriter(outfilename, numWorkers)
	if err != nil {
		return err
	}
	defer db.Close()

	queue := make(chan int)
	var wg sync.WaitGroup

	// feather tables carry raw WKB, so dataset bounds are only known
	// after decoding; workers merge their envelopes under boundsMu
	bounds := geos.NilBounds
	var boundsMu sync.Mutex

	go produce(table.Size(), queue)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

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
				g, err := ctx.GeomFromWKB(table.WKB(i))
				if err != nil {
					panic(fmt.Errorf("feature %d: %v", table.ID(i), err))
				}

				b := ctx.Bounds(g)
				boundsMu.Lock()
				bounds.Extend(b)
				boundsMu.Unlock()

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

	if err := db.WriteMetadata(datasetName, description, table.Size(), [4]float64{bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY}); err != nil {
		return err
	}

	fmt.Printf("Wrote %d features to %v\n", table.Size(), outfilename)

	return nil
}
