package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/udayjinna/Voice/clients"
	cfg "github.com/udayjinna/Voice/config"
	"github.com/udayjinna/Voice/emotion"
	"github.com/udayjinna/Voice/engine"
	"github.com/udayjinna/Voice/httpapi"
	"github.com/udayjinna/Voice/mcp"
	"github.com/udayjinna/Voice/store"
	"github.com/udayjinna/Voice/synth"
	"github.com/udayjinna/Voice/voice"
)

const version = "1.0.0"

var (
	conf      *cfg.Root
	flagVoice string
	flagModel string
	flagPlay  bool
)

var rootCmd = &cobra.Command{
	Use:   "empathy",
	Short: "Transform plain text into emotionally-aware expressive speech",
	Long: "The Empathy Engine detects the emotional tone of input text and " +
		"synthesizes speech whose rate, pitch and volume reflect it.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form and JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}
		catalog, err := voice.Catalog(conf.Voices.File)
		if err != nil {
			return err
		}

		srv := httpapi.NewServer(eng, catalog, conf.Audio.Dir)
		log.WithField("addr", conf.Server.Addr).Info("listening")
		return http.ListenAndServe(conf.Server.Addr, srv)
	},
}

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Synthesize one text and save the audio",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}

		text := strings.Join(args, " ")
		res, err := eng.Process(cmd.Context(), engine.Request{
			Text:  text,
			Voice: flagVoice,
			Model: flagModel,
		})
		if err != nil {
			return err
		}

		fmt.Printf("emotion: %s (intensity %.0f%%)\n", res.Emotion.Label, res.Emotion.Intensity*100)
		fmt.Printf("voice:   %s rate=%s pitch=%s volume=%s\n",
			res.Voice.Voice, res.Voice.Rate, res.Voice.Pitch, res.Voice.Volume)
		if res.Voice.Style != "" {
			fmt.Printf("style:   %s\n", res.Voice.Style)
		}
		if res.AudioFile == "" {
			fmt.Println("no synthesizer configured, audio skipped")
			return nil
		}

		path := filepath.Join(conf.Audio.Dir, res.AudioFile)
		fmt.Printf("audio:   %s\n", path)
		if flagPlay {
			if err := openWithDefaultPlayer(path); err != nil {
				log.WithError(err).Warn("auto play failed")
			}
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Print the emotion profile of a text as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}

		profile, err := eng.Analyze(cmd.Context(), strings.Join(args, " "), flagModel)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	},
}

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the available synthesizer voices",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := voice.Catalog(conf.Voices.File)
		if err != nil {
			return err
		}
		for _, v := range catalog {
			line := fmt.Sprintf("- %s (%s, %s, %s)", v.ID, v.Name, v.Language, v.Gender)
			if len(v.Styles) > 0 {
				line += " styles: " + strings.Join(v.Styles, ", ")
			}
			fmt.Println(line)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Current Configuration:\n")
		fmt.Printf("  Server Addr: %s\n", conf.Server.Addr)
		fmt.Printf("  Classifier URL: %s\n", conf.Classifier.URL)
		fmt.Printf("  Classifier Model: %s\n", conf.Classifier.Model)
		fmt.Printf("  Synth Provider: %s\n", conf.Synth.Provider)
		fmt.Printf("  Synth Voice: %s\n", conf.Synth.Voice)
		fmt.Printf("  Audio Dir: %s\n", conf.Audio.Dir)
		fmt.Printf("  Log Level: %s\n", conf.Log.Level)
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP tool server over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}
		catalog, err := voice.Catalog(conf.Voices.File)
		if err != nil {
			return err
		}
		return mcp.NewServer(eng, catalog, version).Run(cmd.Context())
	},
}

func buildEngine(ctx context.Context) (*engine.Engine, error) {
	httpc := clients.NewHTTP(cfg.DurSeconds(conf.Classifier.Timeout))
	cache := emotion.NewCache(func(model string) emotion.Classifier {
		return clients.NewClassifier(httpc, conf.Classifier.URL, model)
	})

	syn, err := synth.New(ctx, conf.Synth.Provider, conf.Synth.URL, cfg.DurSeconds(conf.Synth.Timeout))
	if err != nil {
		return nil, fmt.Errorf("synth init: %w", err)
	}

	fs := store.NewFileStore(conf.Audio.Dir)
	return engine.New(cache, syn, fs, conf.Synth.Voice, conf.Classifier.Model), nil
}

func openWithDefaultPlayer(path string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	case "darwin":
		return exec.Command("open", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	speakCmd.Flags().StringVar(&flagVoice, "voice", "", "synthesizer voice identifier")
	speakCmd.Flags().StringVar(&flagModel, "model", "", "classifier model identifier")
	speakCmd.Flags().BoolVar(&flagPlay, "play", false, "open the audio with the OS default player")
	analyzeCmd.Flags().StringVar(&flagModel, "model", "", "classifier model identifier")
}

func initConfig() {
	var err error
	conf, err = cfg.Load()
	if err != nil {
		log.WithError(err).Error("failed to load configuration")
		os.Exit(1)
	}

	lvl, err := log.ParseLevel(conf.Log.Level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(voicesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command execution failed")
		os.Exit(1)
	}
}
