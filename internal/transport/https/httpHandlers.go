package https

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kravtmk/whoami-app/internal/apperror"
	"github.com/Kravtmk/whoami-app/internal/model"
	"github.com/Kravtmk/whoami-app/internal/service"
)

type HTTPHandlers struct {
	RoleRegistry  *service.RoleRegistry
	DayLogService *service.DayLogService
	now           func() time.Time
}

func NewHTTPHandlers(roleRegistry *service.RoleRegistry, dayLogService *service.DayLogService) *HTTPHandlers {
	return &HTTPHandlers{
		RoleRegistry:  roleRegistry,
		DayLogService: dayLogService,
		now:           time.Now,
	}
}

// @Summary Проверка доступности
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthDTO
// @Router /health [get]
func (h *HTTPHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthDTO{Status: "ok"})
}

// @Summary Получить все роли
// @Description Возвращает роли в порядке добавления
// @Tags role
// @Produce json
// @Success 200 {array} model.Role "Успешная операция"
// @Router /roles [get]
func (h *HTTPHandlers) HandleListRoles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.RoleRegistry.List(r.Context()))
}

// @Summary Добавить роль
// @Description Добавляет роль с уникальным id
// @Tags role
// @Accept json
// @Produce json
// @Param input body model.Role true "Роль"
// @Success 200 {object} model.Role "Успешная операция"
// @Failure 400 {object} model.ErrorDTO "Невалидный запрос"
// @Failure 409 {object} model.ErrorDTO "Роль с таким id уже существует"
// @Failure 500 {object} model.ErrorDTO "Внутренняя ошибка сервера"
// @Router /roles [post]
func (h *HTTPHandlers) HandleAddRole(w http.ResponseWriter, r *http.Request) {
	var role model.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	added, err := h.RoleRegistry.Add(r.Context(), role)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, added)
}

// @Summary Удалить роль
// @Tags role
// @Produce json
// @Param role_id path int true "ID роли"
// @Success 200 {object} model.DeletedRoleDTO "Удалённая роль"
// @Failure 400 {object} model.ErrorDTO "Невалидный ID роли"
// @Failure 404 {object} model.ErrorDTO "Роль не найдена"
// @Failure 500 {object} model.ErrorDTO "Внутренняя ошибка сервера"
// @Router /roles/{role_id} [delete]
func (h *HTTPHandlers) HandleDeleteRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := roleIDFromPath(r.URL.Path)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	deleted, err := h.RoleRegistry.Remove(r.Context(), roleID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.DeletedRoleDTO{Deleted: deleted})
}

// @Summary Сводка за день
// @Description Возвращает журнал дня, оставшиеся минуты и проценты. Проценты округляются независимо и могут не давать в сумме 100.
// @Tags today
// @Produce json
// @Param userId query string true "ID пользователя"
// @Param day query string false "День в формате YYYY-MM-DD, по умолчанию сегодня"
// @Success 200 {object} model.TodayDTO "Успешная операция"
// @Failure 400 {object} model.ErrorDTO "Невалидный запрос"
// @Failure 500 {object} model.ErrorDTO "Внутренняя ошибка сервера"
// @Router /today [get]
func (h *HTTPHandlers) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	userID, day, ok := h.dayKeyFromQuery(w, r)
	if !ok {
		return
	}
	today, err := h.DayLogService.Summary(r.Context(), userID, day)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TodayDTO{
		Log:          today.Log,
		OtherMinutes: today.OtherMinutes,
		SummaryPercent: model.SummaryPercentDTO{
			Sleep:   today.Percent.Sleep,
			Buffer:  today.Percent.Buffer,
			Tracked: today.Percent.Tracked,
			Other:   today.Percent.Other,
		},
	})
}

// @Summary Добавить сегмент
// @Description Добавляет отрезок времени к журналу дня. Если день уже заполнен, возвращает 409 и ничего не сохраняет.
// @Tags today
// @Accept json
// @Produce json
// @Param userId query string true "ID пользователя"
// @Param day query string false "День в формате YYYY-MM-DD, по умолчанию сегодня"
// @Param input body model.Segment true "Сегмент"
// @Success 200 {object} model.AppendSegmentResponseDTO "Успешная операция"
// @Failure 400 {object} model.ErrorDTO "Невалидный запрос"
// @Failure 409 {object} model.ErrorDTO "Сумма минут превышает 1440"
// @Failure 500 {object} model.ErrorDTO "Внутренняя ошибка сервера"
// @Router /today/segment [post]
func (h *HTTPHandlers) HandleAddSegment(w http.ResponseWriter, r *http.Request) {
	userID, day, ok := h.dayKeyFromQuery(w, r)
	if !ok {
		return
	}
	var seg model.Segment
	if err := json.NewDecoder(r.Body).Decode(&seg); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	log, other, err := h.DayLogService.AppendSegment(r.Context(), userID, day, seg)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AppendSegmentResponseDTO{OK: true, Log: log, OtherMinutes: other})
}

func (h *HTTPHandlers) dayKeyFromQuery(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	userID := q.Get("userId")
	if userID == "" {
		writeJSONError(w, http.StatusBadRequest, "missing userId")
		return "", "", false
	}
	day := q.Get("day")
	if day == "" {
		day = h.now().Format(model.DayLayout)
	}
	return userID, day, true
}

func roleIDFromPath(path string) (int, error) {
	if !strings.HasPrefix(path, "/roles/") {
		return 0, errors.New("invalid path")
	}
	// /roles/3 → "3"
	idStr := strings.Trim(strings.TrimPrefix(path, "/roles/"), "/")
	if idStr == "" {
		return 0, errors.New("missing role id")
	}
	if strings.Contains(idStr, "/") {
		return 0, errors.New("invalid path")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("role id must be an integer")
	}
	return id, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrRoleNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrRoleConflict), errors.Is(err, apperror.ErrOverAllocation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Default().Error("request failed", "request_id", requestID(r.Context()), "err", err)
		writeJSONError(w, status, "internal server error")
		return
	}
	writeJSONError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to encode response", "warn", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorDTO{Error: message})
}
