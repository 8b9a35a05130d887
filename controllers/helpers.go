// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/services"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/l3montree-dev/parkwatch/utils"
	"github.com/labstack/echo/v4"
)

// lifecycleError maps the expected service outcomes to HTTP responses. An
// unrecognized error falls through to the central error handler as a 500.
func lifecycleError(err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(404, "violation not found").WithInternal(err)
	case errors.Is(err, services.ErrAlreadyContested):
		return echo.NewHTTPError(409, "violation has already been contested").WithInternal(err)
	case errors.Is(err, services.ErrInvalidState):
		return echo.NewHTTPError(409, "violation is in the wrong state for this operation").WithInternal(err)
	}
	return err
}

// evidenceUploads reads the "evidence" files of a multipart request into
// memory. A request without a form or without evidence files is fine.
func evidenceUploads(ctx shared.Context) ([]dtos.EvidenceUpload, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, nil
	}

	uploads := make([]dtos.EvidenceUpload, 0, len(form.File["evidence"]))
	for _, fileHeader := range form.File["evidence"] {
		upload, err := readUpload(fileHeader)
		if err != nil {
			return nil, echo.NewHTTPError(400, "could not read evidence upload").WithInternal(err)
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}

func readUpload(fileHeader *multipart.FileHeader) (dtos.EvidenceUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return dtos.EvidenceUpload{}, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return dtos.EvidenceUpload{}, err
	}

	return dtos.EvidenceUpload{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Content:  content,
	}, nil
}

func violationToDTO(violation models.Violation) dtos.ViolationDTO {
	return dtos.ViolationDTO{
		ID:                 violation.ID,
		VehicleID:          violation.VehicleID,
		TypeID:             violation.TypeID,
		Status:             violation.Status,
		ContestStatus:      violation.ContestStatus,
		Description:        violation.Description,
		Location:           violation.Location,
		UpdatedBy:          violation.UpdatedBy,
		ClosedAt:           violation.ClosedAt,
		ClosedReason:       violation.ClosedReason,
		ContestExplanation: violation.ContestExplanation,
		ContestSubmittedAt: violation.ContestSubmittedAt,
		CreatedAt:          violation.CreatedAt,
		UpdatedAt:          violation.UpdatedAt,
		Evidences: utils.Map(violation.Evidences, func(evidence models.Evidence) dtos.EvidenceDTO {
			return dtos.EvidenceDTO{
				ID:       evidence.ID,
				FileName: evidence.FileName,
				MimeType: evidence.MimeType,
			}
		}),
	}
}
