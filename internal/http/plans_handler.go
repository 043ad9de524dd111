package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/domain/dto"
	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/i18n"
	"github.com/guttosm/planning-service/internal/importer"
	"github.com/guttosm/planning-service/internal/middleware"
	"github.com/guttosm/planning-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultImportMaxBytes bounds spreadsheet uploads when no limit is configured.
const DefaultImportMaxBytes = 10 << 20

// PlanImporter turns an uploaded spreadsheet into plan lines.
type PlanImporter interface {
	Import(ctx context.Context, r io.Reader, target importer.Target) (*importer.Result, error)
}

// PlanHandler provides HTTP handlers for plan routes.
type PlanHandler struct {
	planning       service.PlanningService
	catalog        service.CatalogService
	importer       PlanImporter
	audit          *middleware.AsyncLogger
	domain         int
	maxImportBytes int64
	now            func() time.Time
}

// PlanHandlerOption configures a PlanHandler.
type PlanHandlerOption func(*PlanHandler)

// WithAuditLogger records plan changes through al.
func WithAuditLogger(al *middleware.AsyncLogger) PlanHandlerOption {
	return func(h *PlanHandler) { h.audit = al }
}

// WithImporter enables spreadsheet imports into domain.
func WithImporter(im PlanImporter, domain int) PlanHandlerOption {
	return func(h *PlanHandler) {
		h.importer = im
		h.domain = domain
	}
}

// WithImportMaxBytes bounds the upload size.
func WithImportMaxBytes(n int64) PlanHandlerOption {
	return func(h *PlanHandler) {
		if n > 0 {
			h.maxImportBytes = n
		}
	}
}

// NewPlanHandler creates a new PlanHandler instance.
func NewPlanHandler(planning service.PlanningService, catalog service.CatalogService, opts ...PlanHandlerOption) *PlanHandler {
	h := &PlanHandler{
		planning:       planning,
		catalog:        catalog,
		domain:         1,
		maxImportBytes: DefaultImportMaxBytes,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// fieldEdit converts an edit request into a service edit.
func fieldEdit(req dto.EditRequest) (service.FieldEdit, error) {
	fe := service.FieldEdit{Field: req.Field, Text: req.Text}

	switch req.Field {
	case service.FieldAmount, service.FieldMeters, service.FieldMinutes,
		service.FieldBlowsPerMinute, service.FieldOrder:
		if req.Number == nil {
			return fe, &dto.ValidationError{Field: "number", Message: "is required for " + req.Field}
		}
		fe.Number = *req.Number
	}

	ref, err := req.RefID()
	if err != nil {
		return fe, err
	}
	fe.Ref = ref

	if req.Date != "" {
		if fe.Date, err = dto.ParseDate(req.Date); err != nil {
			return fe, err
		}
	}
	return fe, nil
}

func calculationResponse(calc service.Calculation) dto.CalculationResponse {
	return dto.CalculationResponse{
		Plan:      calc.Plan,
		Direction: calc.Direction.String(),
		Valid:     calc.Valid,
		Adjusted:  calc.Adjusted,
	}
}

func planID(c *gin.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return primitive.NilObjectID, &dto.ValidationError{Field: "id", Message: "must be a 24 character hex id"}
	}
	return id, nil
}

// Calculate handles POST /api/plans/calculate requests.
//
// @Summary      Recalculate a plan line
// @Description  Applies one field edit to the plan line sent by the client and returns the recalculated line without saving it. Editing amount, meters or minutes drives the calculation from that figure; meters and minutes are lowered to whole machine cycles.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculatePlanRequest true "Plan line and edit"
// @Success      200 {object} dto.SuccessResponse{data=dto.CalculationResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid edit"
// @Failure      404 {object} dto.ErrorResponse "Referenced catalog entry not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/plans/calculate [post]
func (h *PlanHandler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CalculatePlanRequest](c)
	if err != nil {
		h.bindError(builder, err)
		return
	}
	edit, err := fieldEdit(req.Edit)
	if err != nil {
		builder.Fail(err)
		return
	}

	calc, err := h.planning.Recalculate(c.Request.Context(), req.Plan, edit)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(calculationResponse(calc))
}

// New handles POST /api/plans/new requests.
//
// @Summary      Blank plan line
// @Description  Returns an unsaved blank line for a machine and day, numbered after the existing lines.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body dto.NewPlanRequest true "Machine and day"
// @Success      200 {object} dto.SuccessResponse{data=model.Plan}
// @Failure      400 {object} dto.ErrorResponse "Invalid machine or day"
// @Failure      404 {object} dto.ErrorResponse "Machine not found"
// @Security     BearerAuth
// @Router       /api/plans/new [post]
func (h *PlanHandler) New(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.NewPlanRequest](c)
	if err != nil {
		h.bindError(builder, err)
		return
	}
	machineID, _ := primitive.ObjectIDFromHex(req.MachineID)
	date, _ := dto.ParseDate(req.Date)

	p, err := h.planning.NewPlan(c.Request.Context(), machineID, date)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(p)
}

// List handles GET /api/plans requests.
//
// @Summary      List plan lines
// @Description  Lists plan lines sorted by day and order, optionally for one machine and a day range.
// @Tags         Plans
// @Produce      json
// @Param        machine_id query string false "Machine id"
// @Param        from query string false "First day (YYYY-MM-DD)"
// @Param        to query string false "Last day (YYYY-MM-DD)"
// @Param        limit query int false "Maximum number of lines"
// @Success      200 {object} dto.SuccessResponse{data=dto.PlanListResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Failure      503 {object} dto.ErrorResponse "Plan storage unavailable"
// @Security     BearerAuth
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	filter, err := planFilter(c)
	if err != nil {
		builder.Fail(err)
		return
	}

	plans, err := h.planning.List(c.Request.Context(), filter)
	if err != nil {
		builder.Fail(err)
		return
	}
	if plans == nil {
		plans = []model.Plan{}
	}
	builder.SuccessOK(dto.PlanListResponse{Plans: plans, Count: len(plans)})
}

func planFilter(c *gin.Context) (model.PlanFilter, error) {
	var f model.PlanFilter

	if v := c.Query("machine_id"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return f, dto.ErrInvalidMachineID
		}
		f.MachineID = id
	}
	if v := c.Query("from"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.From = &d
	}
	if v := c.Query("to"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.To = &d
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return f, err
	}
	f.Limit = limit
	return f, nil
}

// Get handles GET /api/plans/:id requests.
//
// @Summary      Get a plan line
// @Tags         Plans
// @Produce      json
// @Param        id path string true "Plan id"
// @Success      200 {object} dto.SuccessResponse{data=model.Plan}
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Plan not found"
// @Security     BearerAuth
// @Router       /api/plans/{id} [get]
func (h *PlanHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := planID(c)
	if err != nil {
		builder.Fail(err)
		return
	}
	p, err := h.planning.Get(c.Request.Context(), id)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(p)
}

// Save handles PUT /api/plans requests.
//
// @Summary      Save plan lines
// @Description  Inserts new lines and updates existing ones. Lines not marked dirty are returned unchanged. Saving stops at the first failing line.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SavePlansRequest true "Plan lines"
// @Success      200 {object} dto.SuccessResponse{data=dto.PlanListResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      503 {object} dto.ErrorResponse "Plan storage unavailable"
// @Security     BearerAuth
// @Router       /api/plans [put]
func (h *PlanHandler) Save(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SavePlansRequest](c)
	if err != nil {
		h.bindError(builder, err)
		return
	}

	operator := middleware.GetOperator(c)
	for i := range req.Plans {
		p := &req.Plans[i]
		dirty, isNew := p.Dirty, p.IsNew()

		if err := h.planning.Save(c.Request.Context(), p, operator); err != nil {
			middleware.AuditLogError(h.audit, c, model.ActionPlanSave, p.ID.Hex(), "Plan save failed", err,
				map[string]interface{}{"order": p.Order})
			builder.Fail(err)
			return
		}
		if dirty {
			middleware.AuditLog(h.audit, c, model.ActionPlanSave, p.ID.Hex(), "Plan saved",
				map[string]interface{}{"order": p.Order, "new": isNew})
		}
	}
	builder.SuccessOK(dto.PlanListResponse{Plans: req.Plans, Count: len(req.Plans)})
}

// Edit handles PATCH /api/plans/:id requests.
//
// @Summary      Edit a stored plan line
// @Description  Applies one field edit to a stored line, recalculates it and saves it.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        id path string true "Plan id"
// @Param        request body dto.EditRequest true "Field edit"
// @Success      200 {object} dto.SuccessResponse{data=dto.CalculationResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid edit"
// @Failure      404 {object} dto.ErrorResponse "Plan or catalog entry not found"
// @Security     BearerAuth
// @Router       /api/plans/{id} [patch]
func (h *PlanHandler) Edit(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := planID(c)
	if err != nil {
		builder.Fail(err)
		return
	}
	req, err := BuildRequestAndValidate[dto.EditRequest](c)
	if err != nil {
		h.bindError(builder, err)
		return
	}
	edit, err := fieldEdit(*req)
	if err != nil {
		builder.Fail(err)
		return
	}

	calc, err := h.planning.Edit(c.Request.Context(), id, edit, middleware.GetOperator(c))
	if err != nil {
		builder.Fail(err)
		return
	}
	middleware.AuditLog(h.audit, c, model.ActionPlanEdit, id.Hex(), "Plan edited", map[string]interface{}{
		"field":     edit.Field,
		"direction": calc.Direction.String(),
		"valid":     calc.Valid,
	})
	builder.SuccessOK(calculationResponse(calc))
}

// Delete handles DELETE /api/plans/:id requests.
//
// @Summary      Delete a plan line
// @Tags         Plans
// @Produce      json
// @Param        id path string true "Plan id"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Plan not found"
// @Security     BearerAuth
// @Router       /api/plans/{id} [delete]
func (h *PlanHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := planID(c)
	if err != nil {
		builder.Fail(err)
		return
	}
	if err := h.planning.Delete(c.Request.Context(), id); err != nil {
		builder.Fail(err)
		return
	}
	middleware.AuditLog(h.audit, c, model.ActionPlanDelete, id.Hex(), "Plan deleted", nil)

	message := i18n.GetTranslator().Translate(i18n.SuccessKeyPlanDeleted, i18n.GetLocale(c))
	builder.SuccessOK(dto.MessageResponse{Message: message, ID: id.Hex()})
}

// Import handles POST /api/plans/import requests.
//
// @Summary      Import an order spreadsheet
// @Description  Reads the first sheet of an .xlsx file (client, product, material, amount) into calculated plan lines. With save=true the lines are stored.
// @Tags         Plans
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Order spreadsheet (.xlsx)"
// @Param        machine_id formData string false "Target machine id"
// @Param        date formData string false "Target day (YYYY-MM-DD), defaults to today"
// @Param        save query bool false "Store the imported lines"
// @Success      200 {object} dto.SuccessResponse{data=dto.ImportResponse}
// @Success      201 {object} dto.SuccessResponse{data=dto.ImportResponse}
// @Failure      400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure      413 {object} dto.ErrorResponse "File too large"
// @Security     BearerAuth
// @Router       /api/plans/import [post]
func (h *PlanHandler) Import(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.importer == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, nil)
		return
	}
	if c.Request.ContentLength > h.maxImportBytes {
		builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyImportTooLarge, nil)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImportBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyImportTooLarge, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyImportFile, err)
		return
	}

	save := false
	if v := c.Query("save"); v != "" {
		if save, err = strconv.ParseBool(v); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
	}

	target, err := h.importTarget(c)
	if err != nil {
		builder.Fail(err)
		return
	}

	file, err := header.Open()
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyImportFile, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	result, err := h.importer.Import(c.Request.Context(), file, target)
	if err != nil {
		builder.Fail(err)
		return
	}

	operator := middleware.GetOperator(c)
	if save && len(result.Plans) > 0 {
		plans := make([]*model.Plan, len(result.Plans))
		for i := range result.Plans {
			plans[i] = &result.Plans[i]
		}
		if err := h.planning.SaveAll(c.Request.Context(), plans, operator); err != nil {
			middleware.AuditLogError(h.audit, c, model.ActionPlanImport, "", "Plan import failed", err,
				map[string]interface{}{"batch_id": result.BatchID})
			builder.Fail(err)
			return
		}
		middleware.AuditLog(h.audit, c, model.ActionPlanImport, "", "Plans imported", map[string]interface{}{
			"batch_id":   result.BatchID,
			"file":       header.Filename,
			"imported":   result.Imported,
			"unresolved": result.Unresolved,
		})
	}

	resp := dto.ImportResponse{
		BatchID:    result.BatchID,
		Plans:      result.Plans,
		Imported:   result.Imported,
		Unresolved: result.Unresolved,
		Skipped:    result.Skipped,
		Warnings:   result.Warnings,
		Saved:      save,
	}
	if save {
		builder.SuccessCreated(resp)
		return
	}
	builder.SuccessOK(resp)
}

// importTarget reads the optional machine and day of an import form.
func (h *PlanHandler) importTarget(c *gin.Context) (importer.Target, error) {
	now := h.now().UTC()
	target := importer.Target{
		Domain: h.domain,
		Date:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if v := c.PostForm("date"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			return target, err
		}
		target.Date = d
	}
	if v := c.PostForm("machine_id"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return target, dto.ErrInvalidMachineID
		}
		machine, err := h.catalog.Machine(c.Request.Context(), id)
		if err != nil {
			return target, err
		}
		target.Machine = machine
	}
	return target, nil
}

// bindError answers a request whose body could not be bound or validated.
func (h *PlanHandler) bindError(builder *ResponseBuilder, err error) {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		builder.Fail(err)
		return
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
