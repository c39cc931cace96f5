package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

// upload validates the local audio file, reads it into memory and stores it
// as <userID>/<recordingID><ext>. The object path is deterministic so a rerun
// of the same recording overwrites rather than duplicates.
func (o *Orchestrator) upload(ctx context.Context, j *job) error {
	j.report(StageUploading, 0)

	info, err := os.Stat(j.req.LocalAudioPath)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "audio file not accessible")
	}
	if info.Size() == 0 {
		return apperrors.ValidationError("audio", "audio file is empty")
	}
	if info.Size() > o.cfg.MaxUploadSize {
		return apperrors.New(apperrors.ErrCodeFileTooLarge,
			fmt.Sprintf("audio file is %d bytes, limit is %d", info.Size(), o.cfg.MaxUploadSize))
	}

	data, err := os.ReadFile(j.req.LocalAudioPath)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "reading audio file")
	}
	j.audioData = data

	ext := strings.ToLower(filepath.Ext(j.req.LocalAudioPath))
	j.audioPath = fmt.Sprintf("%s/%s%s", j.req.UserID, j.req.RecordingID, ext)
	contentType := audioContentType(ext)

	err = o.retry(j, StageUploading).Do(ctx, func() error {
		reader := &progressReader{
			r:     bytes.NewReader(data),
			total: int64(len(data)),
			onPct: func(pct int) { j.report(StageUploading, pct) },
		}
		url, uploadErr := o.store.Upload(ctx, j.audioPath, contentType, reader, int64(len(data)))
		if uploadErr != nil {
			return fmt.Errorf("uploading %s: %w", j.audioPath, uploadErr)
		}
		j.audioURL = url
		return nil
	})
	if err != nil {
		return err
	}

	j.stageComplete(StageUploading)
	return nil
}

// audioContentType resolves the upload content type. The fixed table wins
// over the host mime database, which maps .m4a inconsistently across distros.
func audioContentType(ext string) string {
	switch ext {
	case ".m4a":
		return "audio/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	case ".webm":
		return "audio/webm"
	}
	if byExt := mime.TypeByExtension(ext); strings.HasPrefix(byExt, "audio/") {
		return byExt
	}
	return "application/octet-stream"
}

// progressReader reports the percentage of bytes consumed as it is read. The
// job's monotonic guard keeps a retried attempt from rewinding the reported
// percentage.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	onPct func(pct int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		if p.total > 0 && p.onPct != nil {
			p.onPct(int(p.read * 100 / p.total))
		}
	}
	return n, err
}
