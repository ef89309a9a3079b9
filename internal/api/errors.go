package api

import appErr "github.com/HakimZ78/devhakim-api/pkg/errors"

func invalidQueryParam(name string) error {
	return appErr.Newf(appErr.CodeInvalid, "invalid %s", name)
}
