package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/model"
	"mkt-merchant-api/internal/service"
)

type MerchantHandler struct{ svc *service.MerchantService }

func NewMerchantHandler() *MerchantHandler {
	return &MerchantHandler{svc: service.NewMerchantService()}
}

func (h *MerchantHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": "invalid id"})
		return
	}
	m, err := h.svc.FindOne(id)
	if err != nil {
		c.JSON(500, gin.H{"code": constant.CodeDatabaseError, "msg": err.Error()})
		return
	}
	if m == nil {
		c.JSON(404, gin.H{"code": constant.CodeMerchantNotFound, "msg": "merchant not found"})
		return
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": toMerchantVO(m)})
}

func (h *MerchantHandler) GetByUUID(c *gin.Context) {
	m, err := h.svc.FindOneByUUID(c.Param("uuid"))
	if err != nil {
		c.JSON(500, gin.H{"code": constant.CodeDatabaseError, "msg": err.Error()})
		return
	}
	if m == nil {
		c.JSON(404, gin.H{"code": constant.CodeMerchantNotFound, "msg": "merchant not found"})
		return
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": toMerchantVO(m)})
}

func (h *MerchantHandler) GetByChannel(c *gin.Context) {
	channelID, err := strconv.ParseUint(c.Param("channelId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": "invalid channel id"})
		return
	}
	m, err := h.svc.FindOneByChannelID(channelID)
	if err != nil {
		c.JSON(500, gin.H{"code": constant.CodeDatabaseError, "msg": err.Error()})
		return
	}
	if m == nil {
		c.JSON(404, gin.H{"code": constant.CodeMerchantNotFound, "msg": "merchant not found"})
		return
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": toMerchantVO(m)})
}

func (h *MerchantHandler) List(c *gin.Context) {
	var q dto.MerchantListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": err.Error()})
		return
	}
	items, total, err := h.svc.FindAll(q)
	if err != nil {
		c.JSON(500, gin.H{"code": constant.CodeDatabaseError, "msg": err.Error()})
		return
	}
	out := make([]dto.MerchantVO, 0, len(items))
	for i := range items {
		out = append(out, toMerchantVO(&items[i]))
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": dto.MerchantListResp{Items: out, TotalItems: total}})
}

func (h *MerchantHandler) Create(c *gin.Context) {
	var req dto.CreateMerchantReq
	if err := bindMerchantReq(c, &req, nil); err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": err.Error()})
		return
	}

	// The provisioning steps call out-of-band platform services and the
	// QR phase intentionally follows a committed first save, so create is
	// not wrapped in a request transaction; each row write is atomic on
	// its own.
	m, err := h.svc.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": toMerchantVO(m)})
}

func (h *MerchantHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": "invalid id"})
		return
	}
	var req dto.UpdateMerchantReq
	if err := bindMerchantReq(c, nil, &req); err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": err.Error()})
		return
	}
	req.ID = id

	var m *model.Merchant
	err = dal.MainDB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		m, txErr = service.NewMerchantServiceWithDB(tx).Update(req)
		return txErr
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": toMerchantVO(m)})
}

func (h *MerchantHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": "invalid id"})
		return
	}

	var resp *dto.DeletionResp
	err = dal.MainDB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		resp, txErr = service.NewMerchantServiceWithDB(tx).SoftDelete(id)
		return txErr
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": resp})
}

// bindMerchantReq accepts JSON or multipart form; multipart may carry an
// optional document file under the "document" field.
func bindMerchantReq(c *gin.Context, createReq *dto.CreateMerchantReq, updateReq *dto.UpdateMerchantReq) error {
	isMultipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")
	if createReq != nil {
		if isMultipart {
			if err := c.ShouldBind(createReq); err != nil {
				return err
			}
		} else if err := c.ShouldBindJSON(createReq); err != nil {
			return err
		}
	} else {
		if isMultipart {
			if err := c.ShouldBind(updateReq); err != nil {
				return err
			}
		} else if err := c.ShouldBindJSON(updateReq); err != nil {
			return err
		}
	}
	if !isMultipart {
		return nil
	}

	fh, err := c.FormFile("document")
	if err != nil {
		return nil // no document attached
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	doc := &dto.FilePayload{Name: fh.Filename, Data: data}
	if createReq != nil {
		createReq.Document = doc
	} else {
		updateReq.Document = doc
	}
	return nil
}

func writeError(c *gin.Context, err error) {
	if ce, ok := err.(constant.Error); ok {
		status := http.StatusBadRequest
		if ce.Code() == constant.CodeMerchantNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"code": ce.Code(), "msg": ce.Message()})
		return
	}
	c.JSON(500, gin.H{"code": constant.CodeSystemError, "msg": err.Error()})
}

func toMerchantVO(m *model.Merchant) dto.MerchantVO {
	vo := dto.MerchantVO{
		ID:                   strconv.FormatUint(m.ID, 10),
		UUID:                 m.UUID,
		CompanyCode:          m.CompanyCode,
		CompanyName:          m.CompanyName,
		CompanyAddress:       m.CompanyAddress,
		CompanyDescription:   m.CompanyDescription,
		CustomerContactEmail: m.CustomerContactEmail,
		CustomerContactPhone: m.CustomerContactPhone,
		AdminPhoneNumber:     m.AdminPhoneNumber,
		Enabled:              m.Enabled,
		ChannelID:            strconv.FormatUint(m.ChannelID, 10),
		RoleID:               strconv.FormatUint(m.RoleID, 10),
		AdministratorID:      strconv.FormatUint(m.AdministratorID, 10),
		QRAssetID:            m.QRAssetID,
		QRAssetSource:        m.QRAssetSource,
		DocumentAssetID:      m.DocumentAssetID,
		DocumentAssetSource:  m.DocumentAssetSource,
		CreatedAt:            m.CreatedAt,
	}
	if m.Administrator != nil {
		vo.AdminFirstName = m.Administrator.FirstName
		vo.AdminLastName = m.Administrator.LastName
		vo.AdminEmail = m.Administrator.EmailAddress
	}
	return vo
}
