package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/types"
)

const (
	// AnnotationProjectSlug holds the "owner/repo" of the GitHub repository
	// that backs a catalog entity.
	AnnotationProjectSlug = "github.com/project-slug"

	DefaultNamespace = "default"
)

// Entity is a software catalog entity as described by a catalog-info.yaml document.
type Entity struct {
	APIVersion string         `yaml:"apiVersion" json:"apiVersion" firestore:"apiVersion"`
	Kind       string         `yaml:"kind" json:"kind" firestore:"kind"`
	Metadata   EntityMetadata `yaml:"metadata" json:"metadata" firestore:"metadata"`
}

type EntityMetadata struct {
	Name        string            `yaml:"name" json:"name" firestore:"name"`
	Namespace   string            `yaml:"namespace,omitempty" json:"namespace,omitempty" firestore:"namespace"`
	Title       string            `yaml:"title,omitempty" json:"title,omitempty" firestore:"title"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty" firestore:"description"`
	Annotations map[string]string `yaml:"annotations,omitempty" json:"annotations,omitempty" firestore:"annotations"`
}

func (x *Entity) Validate() error {
	if x.Kind == "" {
		return goerr.Wrap(types.ErrValidationFailed, "entity kind is empty")
	}
	if x.Metadata.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "entity name is empty", goerr.V("kind", x.Kind))
	}
	return nil
}

// Ref returns the reference of the entity. Empty namespace is treated as default.
func (x *Entity) Ref() EntityRef {
	return NewEntityRef(x.Kind, x.Metadata.Namespace, x.Metadata.Name)
}

// Annotation returns the annotation value, or empty string if not set.
func (x *Entity) Annotation(key string) string {
	if x == nil || x.Metadata.Annotations == nil {
		return ""
	}
	return x.Metadata.Annotations[key]
}

// EntityRef identifies an entity as kind:namespace/name. Kind is stored lower-cased.
type EntityRef struct {
	Kind      string
	Namespace string
	Name      string
}

func NewEntityRef(kind, namespace, name string) EntityRef {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return EntityRef{
		Kind:      strings.ToLower(kind),
		Namespace: namespace,
		Name:      name,
	}
}

func (x EntityRef) String() string {
	return x.Kind + ":" + x.Namespace + "/" + x.Name
}

// ParseEntityRef parses "kind:namespace/name", "kind:name" or "name". A missing
// kind is replaced with defaultKind.
func ParseEntityRef(s, defaultKind string) (EntityRef, error) {
	kind, rest := defaultKind, s
	if k, r, ok := strings.Cut(s, ":"); ok {
		kind, rest = k, r
	}

	namespace, name := DefaultNamespace, rest
	if ns, n, ok := strings.Cut(rest, "/"); ok {
		namespace, name = ns, n
	}

	if kind == "" || namespace == "" || name == "" {
		return EntityRef{}, goerr.Wrap(types.ErrInvalidOption, "invalid entity reference", goerr.V("ref", s))
	}

	return NewEntityRef(kind, namespace, name), nil
}
