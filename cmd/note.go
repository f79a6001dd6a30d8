package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/podsni/TMDB-media/pkg/logger"
	"github.com/podsni/TMDB-media/pkg/manager"
	"github.com/podsni/TMDB-media/pkg/media"
	"github.com/podsni/TMDB-media/pkg/note"
	"github.com/podsni/TMDB-media/pkg/vault"
)

var (
	noteKind   string
	noteID     int
	noteFolder string
	notePrompt bool
)

// noteCmd groups note operations
var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "create and preview vault notes",
}

// promptForFolder reads a destination folder from stdin. An empty answer
// cancels the note.
func promptForFolder(ctx context.Context, category note.Category) (string, error) {
	fmt.Printf("destination folder for this %s (enter to cancel): ", category)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// createNoteCmd builds and saves one note
var createNoteCmd = &cobra.Command{
	Use:   "create",
	Short: "create a note for a catalog record",
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := media.ParseKind(noteKind)
		if err != nil {
			log.Fatal(err)
		}

		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())

		item, detail, err := m.ItemByID(ctx, kind, noteID)
		if err != nil {
			log.Fatalf("failed to look up %s %d: %v", kind, noteID, err)
		}

		opts := manager.CreateOptions{Folder: noteFolder, Detail: detail}
		if notePrompt {
			opts.Choose = promptForFolder
		}

		result, err := m.CreateNote(ctx, item, opts)
		if errors.Is(err, vault.ErrCancelled) {
			fmt.Println("cancelled")
			return
		}
		if err != nil {
			log.Fatalf("failed to create note: %v", err)
		}

		fmt.Println(result.Path)
	},
}

// previewNoteCmd renders a note to stdout without saving it
var previewNoteCmd = &cobra.Command{
	Use:   "preview",
	Short: "render a note to stdout without saving it",
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := media.ParseKind(noteKind)
		if err != nil {
			log.Fatal(err)
		}

		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())

		item, detail, err := m.ItemByID(ctx, kind, noteID)
		if err != nil {
			log.Fatalf("failed to look up %s %d: %v", kind, noteID, err)
		}

		doc, err := m.Preview(ctx, item, detail)
		if err != nil {
			log.Fatalf("failed to render note: %v", err)
		}

		fmt.Println(doc)
	},
}

func init() {
	noteCmd.PersistentFlags().StringVar(&noteKind, "kind", "", "record kind: movie, tv, or anime")
	noteCmd.PersistentFlags().IntVar(&noteID, "id", 0, "catalog id of the record")
	_ = noteCmd.MarkPersistentFlagRequired("kind")
	_ = noteCmd.MarkPersistentFlagRequired("id")

	createNoteCmd.Flags().StringVar(&noteFolder, "folder", "", "destination folder, overriding the folder policy")
	createNoteCmd.Flags().BoolVar(&notePrompt, "prompt", false, "ask for the destination folder interactively")

	noteCmd.AddCommand(createNoteCmd)
	noteCmd.AddCommand(previewNoteCmd)
	rootCmd.AddCommand(noteCmd)
}
