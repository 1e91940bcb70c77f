package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
	"github.com/kjramos5310/inventario-console/pkg/rest"
)

// Partial is a partial record: the subset of fields a screen wants to send.
type Partial map[string]any

// Resource is the uniform CRUD contract over one collection.
type Resource[T any] struct {
	client *rest.Client
	spec   Spec
}

// New binds a collection spec to an API client.
func New[T any](client *rest.Client, spec Spec) Resource[T] {
	return Resource[T]{client: client, spec: spec}
}

// Spec exposes the bound collection spec.
func (r Resource[T]) Spec() Spec {
	return r.spec
}

// FindAll fetches the entire collection. There is no pagination; every call is
// a full fetch, re-keyed when the backend names its id field natively.
func (r Resource[T]) FindAll(ctx context.Context) ([]T, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, r.spec.Path, nil)
	if err != nil {
		return nil, err
	}

	if r.spec.RekeyFrom != "" {
		raw, err = rekey(raw, r.spec.RekeyFrom)
		if err != nil {
			return nil, err
		}
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decode %s list", r.spec.Name))
	}
	return out, nil
}

// FindOne fetches a single record by id.
func (r Resource[T]) FindOne(ctx context.Context, id int64) (T, error) {
	var out T
	raw, err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.spec.Path, id), nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decode %s", r.spec.Name))
	}
	return out, nil
}

// Create posts a partial record. The id is server-assigned and must not be in
// the input.
func (r Resource[T]) Create(ctx context.Context, input Partial) (T, error) {
	var out T
	raw, err := r.client.Do(ctx, http.MethodPost, r.spec.Path, shape(r.spec.CreateAllow, input))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decode created %s", r.spec.Name))
	}
	return out, nil
}

// Update puts a partial record keyed by id.
func (r Resource[T]) Update(ctx context.Context, id int64, changes Partial) (T, error) {
	var out T
	raw, err := r.client.Do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.spec.Path, id), shape(r.spec.UpdateAllow, changes))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decode updated %s", r.spec.Name))
	}
	return out, nil
}

// Remove deletes a record by id. A no-content response is success.
func (r Resource[T]) Remove(ctx context.Context, id int64) error {
	_, err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.spec.Path, id), nil)
	return err
}

// shape applies a write allowlist. Every permitted field is present in the
// result, null when the input lacks it; anything else is dropped. A nil
// allowlist forwards the input unmodified.
func shape(allow []string, input Partial) any {
	if allow == nil {
		if input == nil {
			return Partial{}
		}
		return input
	}
	out := make(map[string]any, len(allow))
	for _, field := range allow {
		if value, ok := input[field]; ok {
			out[field] = value
		} else {
			out[field] = nil
		}
	}
	return out
}

// rekey copies each record's backend-native id field into a uniform "id",
// leaving an already-populated id as fallback.
func rekey(raw json.RawMessage, from string) (json.RawMessage, error) {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode list for re-keying")
	}
	for _, item := range items {
		if v, ok := item[from]; ok && v != nil {
			item["id"] = v
		}
	}
	rekeyed, err := json.Marshal(items)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode re-keyed list")
	}
	return rekeyed, nil
}
