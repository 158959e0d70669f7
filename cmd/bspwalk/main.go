// Command bspwalk loads a glTF level, walks the visibility of one camera view (or a sweep of views) and prints
// the partitions found visible, nearest first.
//
// Usage:
//
//	bspwalk -level level.gltf -x 5 -y 5 -angle 0
//	bspwalk -level level.gltf -config walk.toml -x 5 -y 5 -sweep 120 -from -45 -to 45
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/solarlune/tetrabsp"
)

var (
	flagLevel   = flag.String("level", "", "path to the .gltf or .glb level to load")
	flagPrefix  = flag.String("prefix", "", "only load mesh nodes whose name starts with this prefix")
	flagConfig  = flag.String("config", "", "path to a TOML walk config (defaults are used if empty)")
	flagX       = flag.Float64("x", 0, "camera X position")
	flagY       = flag.Float64("y", 0, "camera Y position")
	flagAngle   = flag.Float64("angle", 0, "view angle in degrees, counter-clockwise from +X")
	flagFOV     = flag.Float64("fov", 0, "field of view in degrees (0 uses the config's)")
	flagSweep   = flag.Int("sweep", 0, "walk this many frames of a camera sweep instead of one view")
	flagFrom    = flag.Float64("from", -45, "sweep start heading in degrees")
	flagTo      = flag.Float64("to", 45, "sweep end heading in degrees")
	flagValid   = flag.Bool("validate", true, "check the level for malformed data before walking")
	flagDump    = flag.Bool("dump-config", false, "print the effective config as TOML and exit")
	flagVerbose = flag.Bool("v", false, "log per-frame statistics")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *flagVerbose {
		level = slog.LevelDebug
	}
	tetrabsp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "bspwalk:", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {

	config := tetrabsp.DefaultConfig()

	if *flagConfig != "" {
		var err error
		if config, err = tetrabsp.LoadConfigFile(*flagConfig); err != nil {
			return err
		}
	}

	if *flagFOV != 0 {
		config.FieldOfView = *flagFOV
	}

	if *flagDump {
		data, err := config.ToTOML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if *flagLevel == "" {
		return errors.New("no level given; use -level")
	}

	opts := tetrabsp.DefaultGLTFLevelOptions()
	opts.PartitionPrefix = *flagPrefix

	lvl, err := tetrabsp.LoadGLTFLevelFile(*flagLevel, opts)
	if err != nil {
		return err
	}

	if *flagValid {
		if err := lvl.Validate(); err != nil {
			return fmt.Errorf("level %s: %w", *flagLevel, err)
		}
	}

	viewer, err := tetrabsp.NewViewer(lvl, tetrabsp.WithConfig(config))
	if err != nil {
		return err
	}

	pos := tetrabsp.NewVector(*flagX, *flagY)

	if *flagSweep <= 0 {
		if err := viewer.Render(pos, tetrabsp.AngleFromDegrees(*flagAngle), nil); err != nil {
			return err
		}
		printFrame(out, lvl, viewer)
		return nil
	}

	sweep := tetrabsp.NewCameraSweep(*flagFrom, *flagTo, 1)
	dt := float32(2) / float32(*flagSweep)

	for i := 0; i < *flagSweep; i++ {
		if err := viewer.Render(pos, sweep.Update(dt), nil); err != nil {
			return err
		}
		fmt.Fprintf(out, "%7.2f° ", sweep.Degrees())
		printFrame(out, lvl, viewer)
	}

	return nil

}

func printFrame(out io.Writer, lvl *tetrabsp.Level, viewer *tetrabsp.Viewer) {

	names := make([]string, 0, len(viewer.Order()))
	for _, id := range viewer.Order() {
		names = append(names, lvl.Partition(id).Name)
	}

	info := viewer.DebugInfo

	fmt.Fprintf(out, "%s (%d/%d rendered", strings.Join(names, " > "), info.RenderedPartitions, lvl.PartitionCount())
	if info.Degraded {
		fmt.Fprintf(out, ", degraded: %v", info.Problem)
	}
	fmt.Fprintln(out, ")")

}
