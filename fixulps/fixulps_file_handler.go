package fixulps

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
)

type file_read struct {
	file  *os.File
	read  func(p []byte) (int, error)
	close func() error
}

func (f *file_read) Read(p []byte) (int, error) {
	return f.read(p)
}

type file_write struct {
	status int
	file   *os.File
	write  func(p []byte) (int, error)
	flush  func() error
	close  func() error
}

func (f *file_write) Write(p []byte) (int, error) {
	return f.write(p)
}

// m_open_read opens filename for reading, decoding through the codec its
// extension selects.
func m_open_read(filename string) (f *file_read, err error) {
	var ff *os.File
	ff, err = os.OpenFile(filename, os.O_RDONLY, 0660)
	if err != nil {
		log.Errorf("open file %s failed: %v", filename, err)
		return nil, err
	}
	f = new(file_read)
	f.file = ff
	switch {
	case strings.HasSuffix(filename, GZIP_EXTENSION):
		var out *gzip.Reader
		out, err = gzip.NewReader(ff)
		if err != nil {
			ff.Close()
			return nil, err
		}
		f.read = out.Read
		f.close = func() error {
			cerr := out.Close()
			ferr := ff.Close()
			if cerr != nil {
				return cerr
			}
			return ferr
		}
	case strings.HasSuffix(filename, ZSTD_EXTENSION):
		var out *zstd.Decoder
		out, err = zstd.NewReader(ff)
		if err != nil {
			ff.Close()
			return nil, err
		}
		f.read = out.Read
		f.close = func() error {
			out.Close()
			return ff.Close()
		}
	default:
		f.read = ff.Read
		f.close = ff.Close
	}
	return f, nil
}

// m_open_write wraps the temporary file with the codec selected by the
// target filename, so a compressed database is written back in its own
// format. The underlying temporary file stays open for the copy-over.
func m_open_write(file *os.File, filename string) (*file_write, error) {
	var f = new(file_write)
	f.status = 1
	f.file = file
	switch {
	case strings.HasSuffix(filename, GZIP_EXTENSION):
		compressFile, err := gzip.NewWriterLevel(file, gzip.DefaultCompression)
		if err != nil {
			return nil, err
		}
		f.flush = compressFile.Flush
		f.write = compressFile.Write
		f.close = compressFile.Close
	case strings.HasSuffix(filename, ZSTD_EXTENSION):
		compressEncode, err := zstd.NewWriter(file)
		if err != nil {
			return nil, err
		}
		f.flush = compressEncode.Flush
		f.write = compressEncode.Write
		f.close = compressEncode.Close
	default:
		f.flush = file.Sync
		f.write = file.Write
		f.close = func() error { return nil }
	}
	return f, nil
}

// filter_lines streams fr into fw, dropping the type-lines keep_line
// rejects. Retained lines keep their original bytes, terminators included.
func filter_lines(fr io.Reader, fw io.Writer, func2rem string, ftype2rem string, fpart2rem string) error {
	var state scan_state
	reader := bufio.NewReader(fr)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 && state.keep_line(line, func2rem, ftype2rem, fpart2rem) {
			if _, werr := io.WriteString(fw, line); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// copy_over copies the completed temporary file's bytes onto the original
// path. This is the only step that opens the original for writing.
func copy_over(tmp *os.File, filename string) error {
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return err
	}
	out, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0660)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, tmp); err != nil {
		out.Close()
		return err
	}
	if err = out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// filter_file rewrites a single database file in place: stream the
// filtered content into a temporary file, then copy it over the original.
// Any failure before copy_over leaves the original untouched.
func filter_file(filename string, func2rem string, ftype2rem string, fpart2rem string) error {
	fr, err := m_open_read(filename)
	if err != nil {
		return err
	}
	defer fr.close()

	tmp, err := os.CreateTemp("", FIXULPS+"-")
	if err != nil {
		log.Errorf("cannot create temporary file for %s: %v", filename, err)
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	fw, err := m_open_write(tmp, filename)
	if err != nil {
		log.Errorf("cannot prepare temporary file for %s: %v", filename, err)
		return err
	}

	if err = filter_lines(fr, fw, func2rem, ftype2rem, fpart2rem); err != nil {
		log.Errorf("error while filtering %s: %v", filename, err)
		return err
	}
	if err = fw.close(); err != nil {
		log.Errorf("error while closing temporary file for %s: %v", filename, err)
		return err
	}
	fw.status = 0
	if err = tmp.Sync(); err != nil {
		log.Errorf("error while syncing temporary file for %s: %v", filename, err)
		return err
	}
	if err = copy_over(tmp, filename); err != nil {
		log.Errorf("cannot replace file %s: %v", filename, err)
		return err
	}
	return nil
}
