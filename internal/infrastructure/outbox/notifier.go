// Package outbox hands rendered reports to the mail relay by dropping them
// into a directory it picks up from.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type Notifier struct {
	dir string
	now func() time.Time
}

func New(dir string) *Notifier {
	return &Notifier{
		dir: dir,
		now: time.Now,
	}
}

// Notify writes the message to a new file. The file appears under its final
// name only once fully written.
func (n *Notifier) Notify(ctx context.Context, subject, content string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := fmt.Sprintf("%s-%s.txt", n.now().UTC().Format("20060102T150405Z"), uuid.NewString())

	tmp, err := os.CreateTemp(n.dir, ".outbox-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err := fmt.Fprintf(tmp, "Subject: %s\n\n%s", subject, content); err != nil {
		return errors.Join(fmt.Errorf("failed to write message: %w", err), tmp.Close())
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(n.dir, name)); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
