package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/elementchain/prince/prince"
	"github.com/elementchain/prince/utils/diag"
	"github.com/elementchain/prince/utils/resume"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Enumerate candidates and write them to stdout or --output",
		RunE:  runGenerate,
	}
	addConfigFlags(cmd)
	cmd.Flags().String("output", "", "output file (default stdout)")
	cmd.Flags().String("resume-file", "", "checkpoint file to resume from; the final position is written to it only after a run that ends without error")
	cmd.Flags().Bool("verbose", false, "log setup diagnostics (CPU banner, keyspace bit strength) before running")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStoreAndConfig(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		log.Println(diag.CPUBanner())
	}

	resumeFile, _ := cmd.Flags().GetString("resume-file")
	if resumeFile != "" {
		if f, openErr := os.Open(resumeFile); openErr == nil {
			state, loadErr := resume.Load(f)
			f.Close()
			if loadErr != nil {
				return fmt.Errorf("princegen: loading checkpoint: %w", loadErr)
			}
			if verifyErr := resume.Verify(state, store, cfg); verifyErr != nil {
				return fmt.Errorf("princegen: %w", verifyErr)
			}
			cfg.Skip = state.Position
			log.Printf("resuming from position %s", state.Position)
		} else if !os.IsNotExist(openErr) {
			return fmt.Errorf("princegen: opening checkpoint: %w", openErr)
		}
	}

	engine, err := prince.NewEngine(cfg, store)
	if err != nil {
		return fmt.Errorf("princegen: %w", err)
	}
	log.Printf("keyspace: %s candidates", engine.TotalKeyspace())
	if verbose {
		log.Printf("keyspace bit strength: %.2f bits", diag.KeyspaceBits(engine.TotalKeyspace()))
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("princegen: creating %s: %w", path, createErr)
		}
		defer f.Close()
		out = f
	}

	sink := prince.NewBufferedSink(out)
	if err := engine.Run(cmd.Context(), sink); err != nil {
		return fmt.Errorf("princegen: %w", err)
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("princegen: flush: %w", err)
	}

	if resumeFile != "" {
		f, createErr := os.Create(resumeFile)
		if createErr != nil {
			return fmt.Errorf("princegen: writing checkpoint: %w", createErr)
		}
		defer f.Close()
		state := resume.State{Position: engine.Position(), Fingerprint: resume.Fingerprint(store, cfg)}
		if err := resume.Save(f, state); err != nil {
			return fmt.Errorf("princegen: %w", err)
		}
	}

	log.Printf("emitted through position %s", engine.Position())
	return nil
}
