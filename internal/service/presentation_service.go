package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/locvowork/presentation_gateway/internal/domain"
	"github.com/locvowork/presentation_gateway/internal/logger"
	"github.com/locvowork/presentation_gateway/pkg/tabular"
	"github.com/locvowork/presentation_gateway/pkg/thinkcell"
)

// ErrDatabaseUnavailable is returned by BuildChartFromQuery when the gateway
// was started without a database connection.
var ErrDatabaseUnavailable = errors.New("database is not configured")

// ErrInvalidRequest marks request-level validation failures the caller can fix.
var ErrInvalidRequest = errors.New("invalid request")

type PresentationService interface {
	// Build turns a presentation request into ppttc bytes.
	Build(ctx context.Context, req *domain.PresentationRequest) ([]byte, error)
	// BuildChartFromQuery runs a SQL query and renders the result set as a
	// single chart in a one-slide presentation.
	BuildChartFromQuery(ctx context.Context, req *domain.QueryChartRequest) ([]byte, error)
}

type presentationService struct {
	db *sql.DB
}

// NewPresentationService returns a PresentationService. db may be nil; only
// BuildChartFromQuery needs it.
func NewPresentationService(db *sql.DB) PresentationService {
	return &presentationService{db: db}
}

func (s *presentationService) Build(ctx context.Context, req *domain.PresentationRequest) ([]byte, error) {
	if len(req.Slides) == 0 {
		return nil, fmt.Errorf("%w: request contains no slides", ErrInvalidRequest)
	}

	p := thinkcell.NewPresentation()
	for _, slide := range req.Slides {
		t := thinkcell.NewTemplate(slide.Template, warnToLog(ctx))
		for _, obj := range slide.Objects {
			if err := addObject(t, obj); err != nil {
				return nil, fmt.Errorf("object %q: %w", obj.Name, err)
			}
		}
		if err := p.AddTemplate(t); err != nil {
			return nil, err
		}
	}
	return encode(p)
}

func (s *presentationService) BuildChartFromQuery(ctx context.Context, req *domain.QueryChartRequest) ([]byte, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}
	if req.Query == "" {
		return nil, fmt.Errorf("%w: query is empty", ErrInvalidRequest)
	}

	rows, err := s.db.QueryContext(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	frame, err := tabular.FromSQLRows(rows)
	if err != nil {
		return nil, err
	}
	logger.InfoLog(ctx, "query produced %d rows for chart %q", frame.Len(), req.Name)

	t := thinkcell.NewTemplate(req.Template, warnToLog(ctx))
	var opts []thinkcell.ObjectOption
	if req.Fill != nil {
		opts = append(opts, thinkcell.WithFill(req.Fill))
	}
	if err := t.AddChartFromFrame(req.Name, frame, opts...); err != nil {
		return nil, err
	}

	p := thinkcell.NewPresentation()
	if err := p.AddTemplate(t); err != nil {
		return nil, err
	}
	return encode(p)
}

func addObject(t *thinkcell.Template, obj domain.ObjectRequest) error {
	var opts []thinkcell.ObjectOption
	if obj.Fill != nil {
		opts = append(opts, thinkcell.WithFill(obj.Fill))
	}
	if obj.FirstRowBlank != nil {
		opts = append(opts, thinkcell.WithFirstRowBlank(*obj.FirstRowBlank))
	}

	switch obj.Type {
	case "text":
		return t.AddTextField(obj.Name, obj.Text)
	case "table":
		return t.AddTable(obj.Name, obj.Data, opts...)
	case "chart":
		return t.AddChart(obj.Name, obj.Categories, obj.Data, opts...)
	case "pie":
		return t.AddPieChart(obj.Name, obj.Data, opts...)
	case "frame_chart":
		frame, err := tabular.NewFrame(obj.Columns, obj.Data)
		if err != nil {
			return err
		}
		return t.AddChartFromFrame(obj.Name, frame, opts...)
	default:
		return fmt.Errorf("%w: unknown object type %q", ErrInvalidRequest, obj.Type)
	}
}

func warnToLog(ctx context.Context) thinkcell.TemplateOption {
	return thinkcell.WithWarningHandler(func(format string, args ...interface{}) {
		logger.WarnLog(ctx, format, args...)
	})
}

func encode(p *thinkcell.Presentation) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
