package rest

import (
	"encoding/json"
	"net/http"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	"github.com/gorilla/mux"

	"github.com/cosmos/tokenfactory/x/tokenfactory/keeper"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

type (
	// ExecuteReq defines the body of an execute request.
	ExecuteReq struct {
		Sender string           `json:"sender"`
		Msg    types.ExecuteMsg `json:"msg"`
	}

	// ErrorResponse is returned with every non 2xx status.
	ErrorResponse struct {
		Error string `json:"error"`
	}
)

// Server exposes the contract entry points over HTTP so commands can be
// simulated without a chain.
type Server struct {
	keeper keeper.Keeper
	env    wasmvmtypes.Env
	logger log.Logger
}

func NewServer(k keeper.Keeper, env wasmvmtypes.Env, logger log.Logger) *Server {
	return &Server{keeper: k, env: env, logger: logger}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/execute", s.executeHandlerFn).Methods(http.MethodPost)
	r.HandleFunc("/query", s.queryHandlerFn).Methods(http.MethodPost)
	r.HandleFunc("/state", s.stateHandlerFn).Methods(http.MethodGet)
	r.HandleFunc("/denoms/{creator}/{subdenom}", s.denomHandlerFn).Methods(http.MethodGet)
	r.HandleFunc("/validate", s.validateHandlerFn).Methods(http.MethodGet).Queries("denom", "{denom}")
}

func (s *Server) executeHandlerFn(w http.ResponseWriter, r *http.Request) {
	var req ExecuteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errorsmod.Wrap(types.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.keeper.Execute(s.env, wasmvmtypes.MessageInfo{Sender: req.Sender}, req.Msg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) queryHandlerFn(w http.ResponseWriter, r *http.Request) {
	var msg types.QueryMsg
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.writeError(w, errorsmod.Wrap(types.ErrInvalidRequest, err.Error()))
		return
	}

	bz, err := s.keeper.Query(msg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, json.RawMessage(bz))
}

func (s *Server) stateHandlerFn(w http.ResponseWriter, _ *http.Request) {
	state, err := s.keeper.GetState()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) denomHandlerFn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := s.keeper.GetDenom(vars["creator"], vars["subdenom"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) validateHandlerFn(w http.ResponseWriter, r *http.Request) {
	if err := s.keeper.ValidateDenom(mux.Vars(r)["denom"]); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errorsmod.IsOf(err, types.ErrStateNotFound):
		status = http.StatusNotFound
	case errorsmod.IsOf(err,
		types.ErrInvalidSubdenom,
		types.ErrInvalidDenom,
		types.ErrZeroAmount,
		types.ErrInvalidAddress,
		types.ErrAmountOverflow,
		types.ErrInvalidRequest,
	):
		status = http.StatusBadRequest
	default:
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "err", err)
	}
}
