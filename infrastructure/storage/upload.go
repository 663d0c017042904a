// Package storage guarda temporariamente as planilhas enviadas para análise.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

// FilePrefix identifica os arquivos temporários criados pelo UploadStore
const FilePrefix = "ledger-"

var (
	ErrEmptyFilename        = errors.New("nome de arquivo vazio")
	ErrExtensionNotAllowed  = errors.New("extensão de arquivo não permitida")
	ErrUploadDirUnavailable = errors.New("diretório de upload indisponível")
)

// StoredFile é uma planilha gravada no diretório de upload
type StoredFile struct {
	Path         string
	OriginalName string
	Size         int64
}

// UploadStore grava cada envio em um arquivo próprio, sem reaproveitar o nome enviado pelo cliente
type UploadStore struct {
	dir               string
	allowedExtensions map[string]bool
}

func NewUploadStore(dir string, allowedExtensions []string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(ErrUploadDirUnavailable, "%s: %v", dir, err)
	}

	allowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	return &UploadStore{
		dir:               dir,
		allowedExtensions: allowed,
	}, nil
}

// Dir retorna o diretório onde os arquivos são gravados
func (s *UploadStore) Dir() string {
	return s.dir
}

// Validate verifica o nome do arquivo enviado e devolve a extensão normalizada
func (s *UploadStore) Validate(filename string) (string, error) {
	name := strings.TrimSpace(filename)
	if name == "" {
		return "", ErrEmptyFilename
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !s.allowedExtensions[ext] {
		return "", errors.Wrapf(ErrExtensionNotAllowed, "%q", ext)
	}

	return ext, nil
}

// Save grava o conteúdo em um arquivo temporário com a mesma extensão do original
func (s *UploadStore) Save(filename string, content io.Reader) (*StoredFile, error) {
	ext, err := s.Validate(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.CreateTemp(s.dir, FilePrefix+"*"+ext)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar arquivo temporário")
	}

	size, err := io.Copy(file, content)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(file.Name())
		return nil, errors.Wrap(err, "erro ao gravar arquivo enviado")
	}

	return &StoredFile{
		Path:         file.Name(),
		OriginalName: filepath.Base(filename),
		Size:         size,
	}, nil
}

// Release remove o arquivo gravado; é seguro chamar mais de uma vez
func (s *UploadStore) Release(file *StoredFile) {
	if file == nil || file.Path == "" {
		return
	}

	if err := os.Remove(file.Path); err != nil && !os.IsNotExist(err) {
		log.L.WithError(err).WithField("file_path", file.Path).Warn("storage: falha ao remover upload")
	}
}
