package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/thedevsaddam/govalidator"

	"ely.by/mapskins/internal/skins"
)

func init() {
	// Accepts all the forms of uuid supported by the skins endpoint
	govalidator.AddCustomRule("uuid_any", func(field string, rule string, message string, value interface{}) error {
		str, _ := value.(string)
		if _, err := uuid.Parse(str); err != nil {
			if message == "" {
				message = fmt.Sprintf("The %s field must contain valid UUID", field)
			}

			return errors.New(message)
		}

		return nil
	})
}

type SkinResolver interface {
	ResolveSkin(ctx context.Context, identity skins.Identity) image.Image
}

type Skinsystem struct {
	SkinResolver
}

func (s *Skinsystem) Handler() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	router.HandleFunc("/skins/{uuid}", s.skinHandler).Methods(http.MethodGet)
	// Legacy
	router.HandleFunc("/skins", s.skinGetHandler).Methods(http.MethodGet)

	return router
}

func (s *Skinsystem) skinHandler(response http.ResponseWriter, request *http.Request) {
	id, err := uuid.Parse(strings.TrimSuffix(mux.Vars(request)["uuid"], ".png"))
	if err != nil {
		apiBadRequest(response, map[string][]string{
			"uuid": {"The uuid field must contain valid UUID"},
		})
		return
	}

	s.writeSkin(response, request, skins.NewIdentity(id, request.URL.Query().Get("name")))
}

func (s *Skinsystem) skinGetHandler(response http.ResponseWriter, request *http.Request) {
	validator := govalidator.New(govalidator.Options{
		Request: request,
		Rules: govalidator.MapData{
			"uuid": {"required", "uuid_any"},
			"name": {"max:64"},
		},
		RequiredDefault: false,
	})
	if validationErrors := validator.Validate(); len(validationErrors) != 0 {
		apiBadRequest(response, validationErrors)
		return
	}

	query := request.URL.Query()
	s.writeSkin(response, request, skins.NewIdentity(uuid.MustParse(query.Get("uuid")), query.Get("name")))
}

func (s *Skinsystem) writeSkin(response http.ResponseWriter, request *http.Request, identity skins.Identity) {
	skin := s.SkinResolver.ResolveSkin(request.Context(), identity)
	if skin == nil {
		response.WriteHeader(http.StatusNotFound)
		return
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, skin); err != nil {
		apiServerError(response)
		return
	}

	response.Header().Set("Content-Type", "image/png")
	response.WriteHeader(http.StatusOK)
	_, _ = response.Write(buf.Bytes())
}
