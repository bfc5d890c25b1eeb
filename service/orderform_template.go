package service

// orderFormTemplate is the printable A4 order form. Each .page block
// becomes one PDF page; the master block renders on the first page and
// the quantity total on the last.
const orderFormTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 0; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; margin: 0; }
  .page { padding: 10px; page-break-after: always; }
  .page:last-child { page-break-after: auto; }
  .company-name { text-align: center; font-size: 18px; font-weight: bold; }
  .company-address { text-align: center; margin-top: 10px; }
  .title { background: #f1f1f1; border: 1px solid #333; margin-top: 10px; padding: 5px; text-align: center; }
  .master { display: flex; border: 1px solid #333; margin-top: 5px; }
  .party { flex-basis: 60%; padding: 5px; border-right: 1px solid #333; }
  .order-info { flex-basis: 40%; padding: 5px; }
  .order-info table { width: 100%; }
  .order-info td.value { text-align: right; font-weight: bold; }
  .mt-sm { margin-top: 5px; }
  .bold { font-weight: bold; }
  .details-title { text-align: center; font-weight: bold; margin-top: 5px; }
  table.details { width: 100%; border-collapse: collapse; margin-top: 5px; }
  table.details th { background: #f1f1f1; font-weight: bold; padding: 4px; text-align: left; }
  table.details td { padding: 4px; border-bottom: 0.5px solid #f1f1f1; }
  .num { text-align: right; }
</style>
</head>
<body>
{{- $master := .Master }}
{{- $total := .TotalQty }}
{{- range .Pages }}
<div class="page">
  <div class="company-name">ESSA GARMENTS PRIVATE LIMITED</div>
  <div class="company-address">42, VENKATESAIYA COLONY, KANGEYAM ROAD, TIRUPUR - 641604</div>
  <div class="company-address">GSTIN : 33AADCE6591N1Z7</div>
  <div class="title">ORDER FORM</div>
  {{- if .First }}
  <div class="master">
    <div class="party">
      <div>FROM :</div>
      <div class="mt-sm bold">{{ $master.Contact }}</div>
      <div class="mt-sm">{{ $master.Address }}</div>
      <div class="mt-sm">Phone :</div>
      <div class="mt-sm bold">{{ $master.Phone }}</div>
    </div>
    <div class="order-info">
      <table>
        <tr><td>Order No</td><td>:</td><td class="value">{{ $master.ID.Int }}</td></tr>
        <tr><td>Date</td><td>:</td><td class="value">{{ $master.Date }}</td></tr>
        <tr><td>Prepared By</td><td>:</td><td class="value">{{ $master.User }}</td></tr>
      </table>
    </div>
  </div>
  {{- end }}
  <div class="details-title">Order Details</div>
  <table class="details">
    <tr>
      <th style="width:10%">S No</th>
      <th style="width:60%">Brand</th>
      <th style="width:10%">Style</th>
      <th style="width:10%">Size</th>
      <th style="width:10%" class="num">Quantity</th>
    </tr>
    {{- range .Rows }}
    <tr>
      <td>{{ .SNo }}</td>
      <td>{{ .Name }}</td>
      <td>{{ .Style }}</td>
      <td>{{ .Size }}</td>
      <td class="num">{{ .Qty.Int }}</td>
    </tr>
    {{- end }}
    {{- if .Last }}
    <tr>
      <th></th><th></th><th></th><th></th>
      <th class="num">{{ $total }}</th>
    </tr>
    {{- end }}
  </table>
</div>
{{- end }}
</body>
</html>`
