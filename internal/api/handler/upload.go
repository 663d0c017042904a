package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/pkg/apiErrors"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

const (
	uploadFormField = "file"

	// memória usada pelo multipart antes de recorrer a arquivos temporários
	multipartMemory = 8 << 20
)

// incomingUpload é o arquivo recebido no formulário, ainda não gravado em disco
type incomingUpload struct {
	file   multipart.File
	header *multipart.FileHeader
}

func (u *incomingUpload) Filename() string {
	return u.header.Filename
}

func (u *incomingUpload) Close() {
	if u.file != nil {
		_ = u.file.Close()
	}
}

// receiveUpload lê o formulário multipart e valida o arquivo enviado.
// Em caso de falha a resposta já foi escrita e o retorno é false.
func receiveUpload(w http.ResponseWriter, r *http.Request, store *storage.UploadStore, maxBytes int64) (*incomingUpload, bool) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			apiErrors.WriteError(w, apiErrors.ErrFileTooLarge,
				fmt.Sprintf("Arquivo excede o limite de %d MB", maxBytes/(1024*1024)), nil)
		case errors.Is(err, http.ErrNotMultipart):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo enviado", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Warn("upload: formulário inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário inválido", nil)
		}
		return nil, false
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		// Navegadores enviam a parte sem nome de arquivo quando nada foi selecionado
		if _, sent := r.MultipartForm.Value[uploadFormField]; sent {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo selecionado", nil)
			return nil, false
		}
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo enviado", nil)
		return nil, false
	}

	upload := &incomingUpload{file: file, header: header}

	if _, err := store.Validate(header.Filename); err != nil {
		upload.Close()
		if errors.Is(err, storage.ErrEmptyFilename) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo selecionado", nil)
			return nil, false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de arquivo não suportado. Use .xlsx ou .xls",
			map[string]string{"file_name": header.Filename})
		return nil, false
	}

	return upload, true
}

// persistUpload grava o arquivo recebido no diretório de upload.
// Quem recebe o StoredFile deve liberar com store.Release.
func persistUpload(w http.ResponseWriter, r *http.Request, store *storage.UploadStore, upload *incomingUpload) (*storage.StoredFile, bool) {
	defer upload.Close()

	stored, err := store.Save(upload.Filename(), upload.file)
	if err != nil {
		writeInternalError(w, r, "upload", err, "Erro ao salvar arquivo")
		return nil, false
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"file_name": stored.OriginalName,
		"file_size": stored.Size,
	}).Debug("upload: arquivo recebido")

	return stored, true
}
