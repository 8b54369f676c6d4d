package ankiconnect

import (
	"context"
	"errors"
	"sort"

	"github.com/ankiconnect/ankiconnect.go/pkg/connection"
	"github.com/ankiconnect/ankiconnect.go/pkg/models"
	"github.com/ankiconnect/ankiconnect.go/pkg/query"
)

// ErrModelNotFound is returned by lookups that match no note type.
var ErrModelNotFound = errors.New("model not found")

// ErrInvalidModelDefinition is returned when CreateModel is given an empty name,
// no fields or no templates.
var ErrInvalidModelDefinition = errors.New("model needs a name, at least one field and at least one template")

// ModelsClient groups the note type actions.
type ModelsClient struct {
	conn connection.Connection
}

// CardTemplate describes one card template of a note type.
type CardTemplate struct {
	Name  string
	Front string
	Back  string
}

// All returns every note type in the collection, sorted by name. Each
// model is fetched together with its ordered field list.
func (c *ModelsClient) All(ctx context.Context) ([]*models.Model, error) {
	byName, err := connection.Send[map[string]uint64](ctx, c.conn, "modelNamesAndIds", nil)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*models.Model, 0, len(names))
	for _, name := range names {
		fieldNames, err := c.FieldNames(ctx, name)
		if err != nil {
			return nil, err
		}
		fields := make([]models.Field, len(fieldNames))
		for ord, fn := range fieldNames {
			fields[ord] = models.NewField(fn, ord)
		}
		m, err := models.NewModel(models.ModelID(byName[name]), name, fields)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// ByName returns the note type with the given name, or ErrModelNotFound.
func (c *ModelsClient) ByName(ctx context.Context, name string) (*models.Model, error) {
	byName, err := connection.Send[map[string]uint64](ctx, c.conn, "modelNamesAndIds", nil)
	if err != nil {
		return nil, err
	}
	id, ok := byName[name]
	if !ok {
		return nil, ErrModelNotFound
	}
	fieldNames, err := c.FieldNames(ctx, name)
	if err != nil {
		return nil, err
	}
	fields := make([]models.Field, len(fieldNames))
	for ord, fn := range fieldNames {
		fields[ord] = models.NewField(fn, ord)
	}
	return models.NewModel(models.ModelID(id), name, fields)
}

// ByID returns the note type with the given id, or ErrModelNotFound.
func (c *ModelsClient) ByID(ctx context.Context, id models.ModelID) (*models.Model, error) {
	params := findModelsByIDParams{ModelIDs: []uint64{uint64(id)}}
	details, err := connection.Send[[]modelDetails](ctx, c.conn, "findModelsById", params)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrModelNotFound
	}
	d := details[0]
	fields := make([]models.Field, len(d.Flds))
	for i, f := range d.Flds {
		fields[i] = models.NewField(f.Name, f.Ord)
	}
	return models.NewModel(models.ModelID(d.ID), d.Name, fields)
}

// FieldNames returns the field names of the note type, in display order.
func (c *ModelsClient) FieldNames(ctx context.Context, modelName string) ([]string, error) {
	params := modelNameParams{ModelName: modelName}
	return connection.Send[[]string](ctx, c.conn, "modelFieldNames", params)
}

// TemplateNames returns the card template names of the note type.
func (c *ModelsClient) TemplateNames(ctx context.Context, model *models.Model) ([]string, error) {
	params := modelNameParams{ModelName: model.Name()}
	templates, err := connection.Send[map[string]cardTemplate](ctx, c.conn, "modelTemplates", params)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Styling returns the CSS shared by the note type's templates.
func (c *ModelsClient) Styling(ctx context.Context, model *models.Model) (string, error) {
	params := modelNameParams{ModelName: model.Name()}
	res, err := connection.Send[modelStylingResult](ctx, c.conn, "modelStyling", params)
	if err != nil {
		return "", err
	}
	return res.CSS, nil
}

// UpdateStyling replaces the CSS of the note type's templates.
func (c *ModelsClient) UpdateStyling(ctx context.Context, model *models.Model, css string) error {
	params := updateModelStylingParams{Model: model.Name(), CSS: css}
	return c.conn.Send(ctx, nil, "updateModelStyling", params)
}

// CreateModel makes a new note type and returns its id. The field order
// given here becomes the display order.
func (c *ModelsClient) CreateModel(ctx context.Context, name string, fieldNames []string, css string, templates []CardTemplate) (models.ModelID, error) {
	if name == "" || len(fieldNames) == 0 || len(templates) == 0 {
		return 0, ErrInvalidModelDefinition
	}
	wireTemplates := make(map[string]cardTemplate, len(templates))
	for _, t := range templates {
		wireTemplates[t.Name] = cardTemplate{Front: t.Front, Back: t.Back}
	}
	params := createModelParams{
		ModelName:     name,
		InOrderFields: fieldNames,
		CSS:           css,
		CardTemplates: wireTemplates,
	}
	id, err := connection.Send[uint64](ctx, c.conn, "createModel", params)
	if err != nil {
		return 0, err
	}
	return models.ModelID(id), nil
}

// NotesUsingModel returns the ids of all notes based on the note type.
func (c *ModelsClient) NotesUsingModel(ctx context.Context, model *models.Model) ([]models.NoteID, error) {
	q := query.New().OfNoteType(model.Name()).Build()
	ids, err := connection.Send[[]uint64](ctx, c.conn, "findNotes", findParams{Query: q.String()})
	if err != nil {
		return nil, err
	}
	out := make([]models.NoteID, len(ids))
	for i, id := range ids {
		out[i] = models.NoteID(id)
	}
	return out, nil
}
